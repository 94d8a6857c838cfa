package repository

import (
	"symptocare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository interface {
	Create(db *gorm.DB, post *entity.Post) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Post, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.Post, int64, error)
	Update(db *gorm.DB, post *entity.Post) error
	CreateLike(db *gorm.DB, like *entity.PostLike) error
	HasLiked(db *gorm.DB, postID, userID uuid.UUID) (bool, error)
}
