package entity

import "time"

// CommentTarget names the kind of content a comment is attached to. The
// association is by (EntityID, EntityType) pair, there is no foreign key.
type CommentTarget string

const (
	CommentTargetArticle  CommentTarget = "Article"
	CommentTargetVideo    CommentTarget = "Video"
	CommentTargetQuestion CommentTarget = "Question"
)

// Comment is persisted but not yet exposed through any endpoint.
type Comment struct {
	ID         string        `json:"id"`
	Content    string        `json:"content"`
	Author     string        `json:"author"`
	PostedDate time.Time     `json:"postedDate"`
	EntityID   string        `json:"entityId"`
	EntityType CommentTarget `json:"entityType"`
}
