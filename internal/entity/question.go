package entity

import "time"

type Question struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	CategoryID string    `json:"categoryId,omitempty"`
	Category   *Category `json:"category,omitempty"`
	AskedDate  time.Time `json:"askedDate"`
	Views      int       `json:"views"`
	Tags       []string  `json:"tags"`
	Answers    []Answer  `json:"answers"`
}

type Answer struct {
	ID           string    `json:"id"`
	QuestionID   string    `json:"questionId"`
	Content      string    `json:"content"`
	Author       string    `json:"author"`
	AnsweredDate time.Time `json:"answeredDate"`
	Votes        int       `json:"votes"`
	IsAccepted   bool      `json:"isAccepted"`
}
