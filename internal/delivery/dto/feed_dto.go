package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePostRequest struct {
	Content  string `json:"content" validate:"required_without=ImageURL,max=5000"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

// Response DTOs

type PostResponse struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Content    string    `json:"content,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	LikeCount  int       `json:"like_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
	Total int            `json:"total"`
}
