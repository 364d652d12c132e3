package models

import "time"

// Item is a unit of lesson content: markdown body plus catalogue metadata.
type Item struct {
	ID           string    `json:"id"`
	LessonID     string    `json:"lessonId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Tags         []string  `json:"tags"`
	BodyMarkdown string    `json:"bodyMarkdown"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ItemPage struct {
	Content  []Item   `json:"content"`
	PageInfo PageInfo `json:"pageInfo"`
}

// ItemCreateInput is the instructor-side item creation payload.
type ItemCreateInput struct {
	LessonID     string   `json:"lessonId" validate:"required"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	BodyMarkdown string   `json:"bodyMarkdown" validate:"required"`
}

// ItemUpdateInput carries only the fields being changed; nil means untouched.
type ItemUpdateInput struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	BodyMarkdown *string  `json:"bodyMarkdown,omitempty"`
}
