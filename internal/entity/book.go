package entity

import "time"

type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Published int32     `json:"published"`
	Genres    []string  `json:"genres"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
