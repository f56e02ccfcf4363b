package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BOKA26/lovotech-nexus/pkg/domain/project"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) project.Repository {
	return &ProjectRepository{
		db: db,
	}
}

func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	var entities []project.Project
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&entities)
	if result.Error != nil {
		return nil, fmt.Errorf("project list: %w", result.Error)
	}
	return entities, nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&project.Project{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("project count: %w", result.Error)
	}
	return count, nil
}

// ReplaceAll performs the destructive full replace: an unconditional delete
// followed by a bulk insert. The two statements are intentionally not one
// transaction, matching the sync job's replace contract; a failure after the
// delete leaves zero rows and is recovered by re-running the job.
func (r *ProjectRepository) ReplaceAll(ctx context.Context, projects []project.Project) error {
	if err := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&project.Project{}).Error; err != nil {
		return fmt.Errorf("project delete: %w", err)
	}

	if len(projects) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Create(&projects).Error; err != nil {
		return fmt.Errorf("project insert: %w", err)
	}
	return nil
}
