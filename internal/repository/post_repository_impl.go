package repository

import (
	"errors"

	"symptocare-backend/internal/domain/entity"
	domainRepo "symptocare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type postRepository struct{}

func NewPostRepository() domainRepo.PostRepository {
	return &postRepository{}
}

func (r *postRepository) Create(db *gorm.DB, post *entity.Post) error {
	return db.Create(post).Error
}

func (r *postRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Post, error) {
	var post entity.Post
	err := db.Preload("Author").Preload("Author.Profile").Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.Post, int64, error) {
	var posts []entity.Post
	var total int64

	if err := db.Model(&entity.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.
		Preload("Author").Preload("Author.Profile").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) Update(db *gorm.DB, post *entity.Post) error {
	return db.Save(post).Error
}

func (r *postRepository) CreateLike(db *gorm.DB, like *entity.PostLike) error {
	return db.Create(like).Error
}

func (r *postRepository) HasLiked(db *gorm.DB, postID, userID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
