package interfaces

import (
	"context"

	"photostock/internal/domain/entities"
)

// IResultRepository abstracts DynamoDB persistence for cataloged results.
//
// The catalog must be able to:
//   - save a validated entry as a result (invNumber unique)
//   - return the subset of candidate invoice numbers already stored
//   - scan the full catalog as the snapshot behind search/ranking
//   - update workflow status and the stored image path
//   - delete a result
//
// Lookups return a zero-value Result (empty InvNumber) when nothing
// matches; they do not error on absence.

type IResultRepository interface {
	Save(ctx context.Context, r entities.Result) (entities.Result, error)
	GetByInvNumber(ctx context.Context, invNumber string) (entities.Result, error)
	FindAll(ctx context.Context) ([]entities.Result, error)
	FindExisting(ctx context.Context, invNumbers []string) ([]string, error)
	UpdateStatus(ctx context.Context, invNumber string, status entities.Status) (entities.Result, error)
	UpdateImagePath(ctx context.Context, invNumber, imagePath string) (entities.Result, error)
	Delete(ctx context.Context, invNumber string) error
}
