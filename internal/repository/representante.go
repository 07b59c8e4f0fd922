package repository

import (
	"context"
	"iter"

	"github.com/google/uuid"

	"representantes/internal/model"
)

// RepresentanteRepository defines data access for representantes using SQL queries only.
// No business logic here, only persistence operations.
//
// Lookups that find nothing return a nil model and a nil error; errors are reserved
// for failures talking to the store.
type RepresentanteRepository interface {
	// InitData inserts the seed set when seeding is enabled.
	InitData(ctx context.Context) error

	// ClearData deletes every row when seeding is enabled. Failures are logged and
	// reported in the result instead of aborting the caller.
	ClearData(ctx context.Context) ClearResult

	// FindAll lazily yields every row. Each iteration runs the query again.
	FindAll(ctx context.Context) iter.Seq2[model.Representante, error]

	// FindAllPageable yields at most min(perPage, MaxPerPage) rows starting at page*perPage.
	FindAllPageable(ctx context.Context, page, perPage int) iter.Seq2[model.Representante, error]

	// FindByID returns the representante with the given id, or nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Representante, error)

	// FindByNombre yields the rows whose nombre equals the argument.
	FindByNombre(ctx context.Context, nombre string) iter.Seq2[model.Representante, error]

	// Save inserts a new row. The caller sets the ID beforehand.
	// Returns the stored representante as read back from the database.
	Save(ctx context.Context, r *model.Representante) (*model.Representante, error)

	// Update sets nombre and email of the row matching id. It returns r with its ID set
	// to id when a row matched, nil otherwise.
	Update(ctx context.Context, id uuid.UUID, r *model.Representante) (*model.Representante, error)

	// Delete removes the row matching r.ID and returns r, or nil when nothing matched.
	Delete(ctx context.Context, r *model.Representante) (*model.Representante, error)
}

// ClearResult reports the outcome of ClearData.
type ClearResult struct {
	// Skipped is set when seeding is disabled and nothing was attempted.
	Skipped bool
	Deleted int64
	Err     error
}

// OK reports whether the cleanup did not fail.
func (r ClearResult) OK() bool { return r.Err == nil }
