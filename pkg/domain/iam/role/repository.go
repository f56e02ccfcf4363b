package role

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// HasRole reports whether a row asserts the given role for the user.
	HasRole(ctx context.Context, userID uuid.UUID, r Role) (bool, error)
}
