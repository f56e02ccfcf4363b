package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BOKA26/lovotech-nexus/pkg/domain/iam/role"
)

type UserRoleRepository struct {
	db *gorm.DB
}

func NewUserRoleRepository(db *gorm.DB) role.Repository {
	return &UserRoleRepository{
		db: db,
	}
}

func (r *UserRoleRepository) HasRole(ctx context.Context, userID uuid.UUID, ro role.Role) (bool, error) {
	var entity role.UserRole
	result := r.db.WithContext(ctx).
		First(&entity, "user_id = ? AND role = ?", userID, ro)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("user role: %w", result.Error)
	}
	return true, nil
}
