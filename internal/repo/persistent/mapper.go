package persistent

import (
	"strings"

	"dawah-portal/internal/entity"
	"dawah-portal/internal/model"
)

// joinTags flattens a tag list to the comma-joined column form.
func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// splitTags rehydrates the comma-joined column, dropping empty segments so
// an empty column yields an empty list rather than [""].
func splitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func categoryID(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}

func categoryIDModel(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}
	return &entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Type:        entity.CategoryType(m.Type),
	}
}

func ToCategoryModel(e *entity.Category) *model.CategoryModel {
	if e == nil {
		return nil
	}
	return &model.CategoryModel{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Type:        string(e.Type),
	}
}

func ToArticleEntity(m *model.ArticleModel) *entity.Article {
	if m == nil {
		return nil
	}
	return &entity.Article{
		ID:            m.ID,
		Title:         m.Title,
		Content:       m.Content,
		Author:        m.Author,
		CategoryID:    categoryID(m.CategoryID),
		Category:      ToCategoryEntity(m.Category),
		ImageURL:      m.ImageURL,
		PublishedDate: m.PublishedDate,
		Views:         m.Views,
		Tags:          splitTags(m.Tags),
	}
}

func ToArticleModel(e *entity.Article) *model.ArticleModel {
	if e == nil {
		return nil
	}
	return &model.ArticleModel{
		ID:            e.ID,
		Title:         e.Title,
		Content:       e.Content,
		Author:        e.Author,
		CategoryID:    categoryIDModel(e.CategoryID),
		ImageURL:      e.ImageURL,
		PublishedDate: e.PublishedDate,
		Views:         e.Views,
		Tags:          joinTags(e.Tags),
	}
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}
	return &entity.Video{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		VideoURL:      m.VideoURL,
		ThumbnailURL:  m.ThumbnailURL,
		CategoryID:    categoryID(m.CategoryID),
		Category:      ToCategoryEntity(m.Category),
		Author:        m.Author,
		PublishedDate: m.PublishedDate,
		Views:         m.Views,
		Duration:      m.Duration,
		Tags:          splitTags(m.Tags),
	}
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}
	return &model.VideoModel{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		VideoURL:      e.VideoURL,
		ThumbnailURL:  e.ThumbnailURL,
		CategoryID:    categoryIDModel(e.CategoryID),
		Author:        e.Author,
		PublishedDate: e.PublishedDate,
		Views:         e.Views,
		Duration:      e.Duration,
		Tags:          joinTags(e.Tags),
	}
}

func ToQuestionEntity(m *model.QuestionModel) *entity.Question {
	if m == nil {
		return nil
	}
	q := &entity.Question{
		ID:         m.ID,
		Title:      m.Title,
		Content:    m.Content,
		Author:     m.Author,
		CategoryID: categoryID(m.CategoryID),
		Category:   ToCategoryEntity(m.Category),
		AskedDate:  m.AskedDate,
		Views:      m.Views,
		Tags:       splitTags(m.Tags),
		Answers:    []entity.Answer{},
	}
	for i := range m.Answers {
		q.Answers = append(q.Answers, *ToAnswerEntity(&m.Answers[i]))
	}
	return q
}

func ToQuestionModel(e *entity.Question) *model.QuestionModel {
	if e == nil {
		return nil
	}
	q := &model.QuestionModel{
		ID:         e.ID,
		Title:      e.Title,
		Content:    e.Content,
		Author:     e.Author,
		CategoryID: categoryIDModel(e.CategoryID),
		AskedDate:  e.AskedDate,
		Views:      e.Views,
		Tags:       joinTags(e.Tags),
	}
	for i := range e.Answers {
		q.Answers = append(q.Answers, *ToAnswerModel(&e.Answers[i]))
	}
	return q
}

func ToAnswerEntity(m *model.AnswerModel) *entity.Answer {
	if m == nil {
		return nil
	}
	return &entity.Answer{
		ID:           m.ID,
		QuestionID:   m.QuestionID,
		Content:      m.Content,
		Author:       m.Author,
		AnsweredDate: m.AnsweredDate,
		Votes:        m.Votes,
		IsAccepted:   m.IsAccepted,
	}
}

func ToAnswerModel(e *entity.Answer) *model.AnswerModel {
	if e == nil {
		return nil
	}
	return &model.AnswerModel{
		ID:           e.ID,
		QuestionID:   e.QuestionID,
		Content:      e.Content,
		Author:       e.Author,
		AnsweredDate: e.AnsweredDate,
		Votes:        e.Votes,
		IsAccepted:   e.IsAccepted,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}
	return &entity.User{
		ID:       m.ID,
		Username: m.Username,
		Password: m.Password,
		Name:     m.Name,
		Role:     entity.UserRole(m.Role),
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}
	return &model.UserModel{
		ID:       e.ID,
		Username: e.Username,
		Password: e.Password,
		Name:     e.Name,
		Role:     string(e.Role),
	}
}
