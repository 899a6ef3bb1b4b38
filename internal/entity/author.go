package entity

import "time"

type Author struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Born      *int32    `json:"born,omitempty"` // nil = birth year unknown
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
