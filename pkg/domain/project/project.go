package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/BOKA26/lovotech-nexus/pkg/infra/database/types"
)

// MaxTags bounds the tag list of a project; the first tag is always the
// resolved category.
const MaxTags = 4

type Project struct {
	ID          uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Tags        types.StringArray `json:"tags" gorm:"type:text[]"`
	Link        string            `json:"link"`
	CreatedAt   time.Time         `json:"created_at"`
}

func (Project) TableName() string {
	return "projects"
}
