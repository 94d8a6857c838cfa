package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is an entry in the wellness feed
type Post struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Content   string    `gorm:"type:text" json:"content,omitempty"`
	ImageURL  string    `gorm:"type:text" json:"image_url,omitempty"`
	LikeCount int       `gorm:"not null;default:0" json:"like_count"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Author User       `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Likes  []PostLike `gorm:"foreignKey:PostID" json:"likes,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PostLike records that a user liked a post; the (post_id, user_id) pair is
// unique so repeated likes are idempotent.
type PostLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_post_user" json:"post_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_post_user" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PostLike) TableName() string {
	return "post_likes"
}
