package entity

import "time"

type Article struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Author        string    `json:"author"`
	CategoryID    string    `json:"categoryId,omitempty"`
	Category      *Category `json:"category,omitempty"`
	ImageURL      string    `json:"imageUrl"`
	PublishedDate time.Time `json:"publishedDate"`
	Views         int       `json:"views"`
	Tags          []string  `json:"tags"`
}
