package project

import "context"

type Repository interface {
	List(ctx context.Context) ([]Project, error)
	Count(ctx context.Context) (int64, error)
	// ReplaceAll deletes every stored project and inserts the given set.
	// Delete and insert are two statements; a crash between them leaves the
	// table empty until the next successful run.
	ReplaceAll(ctx context.Context, projects []Project) error
}
