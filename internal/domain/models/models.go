package models

import "time"

type Feedback struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type CreateFeedback struct {
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
}

// UpdateFeedback carries a partial update: nil fields keep the stored value.
type UpdateFeedback struct {
	Text   *string `json:"text" validate:"omitempty,min=1"`
	Rating *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

type FilterOptions struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
