package entity

// CategoryType classifies which content listing a category belongs to.
type CategoryType string

const (
	CategoryTypeArticle  CategoryType = "Article"
	CategoryTypeVideo    CategoryType = "Video"
	CategoryTypeQuestion CategoryType = "Question"
)

type Category struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        CategoryType `json:"type"`
}
