package entity

import "time"

type Video struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	VideoURL      string    `json:"videoUrl"`
	ThumbnailURL  string    `json:"thumbnailUrl"`
	CategoryID    string    `json:"categoryId,omitempty"`
	Category      *Category `json:"category,omitempty"`
	Author        string    `json:"author"`
	PublishedDate time.Time `json:"publishedDate"`
	Views         int       `json:"views"`
	Duration      int       `json:"duration"` // seconds
	Tags          []string  `json:"tags"`
}
