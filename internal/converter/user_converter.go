package converter

import (
	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The role name comes
// from the preloaded Role when present, otherwise from the role id.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	role := user.Role.RoleName
	if role == "" {
		role = entity.RoleName(user.RoleID)
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
