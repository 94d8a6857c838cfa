package repository

import (
	"errors"

	"symptocare-backend/internal/domain/entity"
	domainRepo "symptocare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type profileRepository struct{}

func NewProfileRepository() domainRepo.ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(db *gorm.DB, profile *entity.Profile) error {
	return db.Create(profile).Error
}

func (r *profileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Profile, error) {
	var profile entity.Profile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(db *gorm.DB, profile *entity.Profile) error {
	return db.Save(profile).Error
}
