package converter

import (
	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/domain/entity"
)

// UserToResponse converts a User entity (with its Profile preloaded) to a
// UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	resp := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      entity.RoleName(user.RoleID),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.Profile != nil {
		resp.FullName = user.Profile.FullName
		resp.Phone = user.Profile.Phone
	}

	return resp
}
