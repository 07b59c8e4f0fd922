package sqlrepo

import (
	"context"
	"database/sql"
	"errors"
	"iter"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"representantes/internal/database"
	"representantes/internal/model"
	"representantes/internal/repository"
)

// RepresentanteSQL is a database/sql implementation of repository.RepresentanteRepository.
// The queries use $n placeholders, understood by both pgx and modernc sqlite.
type RepresentanteSQL struct {
	dbs *database.Service
	db  *sql.DB
	log zerolog.Logger
}

// NewRepresentanteSQL creates a repository issuing every query through dbs.Client().
func NewRepresentanteSQL(dbs *database.Service, log zerolog.Logger) *RepresentanteSQL {
	return &RepresentanteSQL{
		dbs: dbs,
		db:  dbs.Client(),
		log: log.With().Str("component", "representantes_repository").Logger(),
	}
}

var _ repository.RepresentanteRepository = (*RepresentanteSQL)(nil)

// InitData inserts the seed rows when seeding is enabled.
func (r *RepresentanteSQL) InitData(ctx context.Context) error {
	if !r.dbs.InitData() {
		return nil
	}
	r.log.Debug().Str("event", "seed_load").Msg("loading representantes seed data")

	for _, rep := range repository.Seed() {
		if _, err := r.Save(ctx, &rep); err != nil {
			return err
		}
	}
	return nil
}

// ClearData deletes every row when seeding is enabled. A failure is logged and
// reported in the result; it never aborts startup.
func (r *RepresentanteSQL) ClearData(ctx context.Context) repository.ClearResult {
	if !r.dbs.InitData() {
		return repository.ClearResult{Skipped: true}
	}
	r.log.Debug().Str("event", "seed_clear").Msg("deleting representantes seed data")

	res, err := r.db.ExecContext(ctx, `DELETE FROM representantes`)
	if err != nil {
		r.log.Error().Str("event", "seed_clear").Str("status", "error").Err(err).Msg("failed to delete seed data")
		return repository.ClearResult{Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.log.Warn().Str("event", "seed_clear").Err(err).Msg("rows affected unavailable")
	}
	return repository.ClearResult{Deleted: n}
}

// FindAll lazily yields every row in storage order.
func (r *RepresentanteSQL) FindAll(ctx context.Context) iter.Seq2[model.Representante, error] {
	r.log.Debug().Str("op", "findAll").Send()

	const q = `SELECT ` + representanteColumns + ` FROM representantes`
	return r.query(ctx, q)
}

// FindAllPageable yields one page ordered by id so that consecutive pages over a
// stable dataset neither overlap nor skip rows.
func (r *RepresentanteSQL) FindAllPageable(ctx context.Context, page, perPage int) iter.Seq2[model.Representante, error] {
	r.log.Debug().Str("op", "findAllPageable").Int("page", page).Int("per_page", perPage).Send()

	pq, err := repository.NewPageQuery(page, perPage)
	if err != nil {
		return repository.Fail[model.Representante](err)
	}

	const q = `
		SELECT ` + representanteColumns + `
		FROM representantes
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	return r.query(ctx, q, pq.Limit, pq.Offset)
}

// FindByID fetches a single representante, returning nil when no row matches.
func (r *RepresentanteSQL) FindByID(ctx context.Context, id uuid.UUID) (*model.Representante, error) {
	r.log.Debug().Str("op", "findById").Stringer("id", id).Send()

	const q = `
		SELECT ` + representanteColumns + `
		FROM representantes
		WHERE id = $1
	`
	var row representanteRow
	if err := r.db.QueryRowContext(ctx, q, id.String()).Scan(row.scanTargets()...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	m, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindByNombre yields the rows whose nombre equals nombre. Case sensitivity follows
// the column collation.
func (r *RepresentanteSQL) FindByNombre(ctx context.Context, nombre string) iter.Seq2[model.Representante, error] {
	r.log.Debug().Str("op", "findByNombre").Str("nombre", nombre).Send()

	const q = `
		SELECT ` + representanteColumns + `
		FROM representantes
		WHERE nombre = $1
	`
	return r.query(ctx, q, nombre)
}

// Save inserts a new row and returns the stored record.
func (r *RepresentanteSQL) Save(ctx context.Context, rep *model.Representante) (*model.Representante, error) {
	r.log.Debug().Str("op", "save").Stringer("id", rep.ID).Send()

	const q = `
		INSERT INTO representantes (` + representanteColumns + `)
		VALUES ($1, $2, $3)
		RETURNING ` + representanteColumns

	var out representanteRow
	if err := r.db.QueryRowContext(ctx, q, toEntity(*rep).args()...).Scan(out.scanTargets()...); err != nil {
		return nil, err
	}
	m, err := out.toModel()
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Update sets nombre and email on the row matching id. The identifier itself is
// never written.
func (r *RepresentanteSQL) Update(ctx context.Context, id uuid.UUID, rep *model.Representante) (*model.Representante, error) {
	r.log.Debug().Str("op", "update").Stringer("id", id).Send()

	const q = `UPDATE representantes SET nombre = $1, email = $2 WHERE id = $3`
	row := toEntity(*rep)
	res, err := r.db.ExecContext(ctx, q, row.Nombre, row.Email, id.String())
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := *rep
	out.ID = id
	return &out, nil
}

// Delete removes the row matching rep.ID.
func (r *RepresentanteSQL) Delete(ctx context.Context, rep *model.Representante) (*model.Representante, error) {
	r.log.Debug().Str("op", "delete").Stringer("id", rep.ID).Send()

	const q = `DELETE FROM representantes WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, rep.ID.String())
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return rep, nil
}

// query runs q when the returned sequence is ranged over and yields mapped rows.
func (r *RepresentanteSQL) query(ctx context.Context, q string, args ...any) iter.Seq2[model.Representante, error] {
	return func(yield func(model.Representante, error) bool) {
		rows, err := r.db.QueryContext(ctx, q, args...)
		if err != nil {
			yield(model.Representante{}, err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var row representanteRow
			if err := rows.Scan(row.scanTargets()...); err != nil {
				yield(model.Representante{}, err)
				return
			}
			m, err := row.toModel()
			if err != nil {
				yield(model.Representante{}, err)
				return
			}
			if !yield(m, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(model.Representante{}, err)
		}
	}
}
