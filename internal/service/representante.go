package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"representantes/internal/cache"
	"representantes/internal/model"
	"representantes/internal/repository"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("representante not found")
)

var tracer = otel.Tracer("representantes/internal/service")

// RepresentanteService defines the use cases for handling representantes.
type RepresentanteService interface {
	// FindAll returns every representante.
	FindAll(ctx context.Context) ([]model.Representante, error)

	// FindAllPageable returns one page; see repository.NewPageQuery for the arithmetic.
	FindAllPageable(ctx context.Context, page, perPage int) ([]model.Representante, error)

	// FindByID returns the representante with the given id or ErrNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Representante, error)

	// FindByNombre returns the representantes with exactly that nombre.
	FindByNombre(ctx context.Context, nombre string) ([]model.Representante, error)

	// Save stores a new representante, generating its id when unset.
	Save(ctx context.Context, r *model.Representante) (*model.Representante, error)

	// Update replaces nombre and email of the representante with the given id.
	// The id in r is ignored.
	Update(ctx context.Context, id uuid.UUID, r *model.Representante) (*model.Representante, error)

	// Delete removes the representante with the given id and returns it.
	Delete(ctx context.Context, id uuid.UUID) (*model.Representante, error)

	// ReloadSeed clears the table and loads the seed set when seeding is enabled.
	// Cached entries are dropped after a successful clear. A failed clear is
	// reported in the result and the load is still attempted.
	ReloadSeed(ctx context.Context) (repository.ClearResult, error)
}

// representanteService is a concrete implementation of RepresentanteService.
// Single lookups are served from the cache when possible.
type representanteService struct {
	repo  repository.RepresentanteRepository
	cache cache.Cache
	log   zerolog.Logger
}

// NewRepresentanteService constructs a new RepresentanteService.
func NewRepresentanteService(repo repository.RepresentanteRepository, c cache.Cache, log zerolog.Logger) RepresentanteService {
	return &representanteService{
		repo:  repo,
		cache: c,
		log:   log.With().Str("component", "representantes_service").Logger(),
	}
}

func (s *representanteService) FindAll(ctx context.Context) ([]model.Representante, error) {
	ctx, span := startSpan(ctx, "RepresentanteService.FindAll")
	defer span.End()

	items, err := repository.Collect(s.repo.FindAll(ctx))
	return items, record(span, err)
}

func (s *representanteService) FindAllPageable(ctx context.Context, page, perPage int) ([]model.Representante, error) {
	ctx, span := startSpan(ctx, "RepresentanteService.FindAllPageable",
		attribute.Int("page", page),
		attribute.Int("per_page", perPage),
	)
	defer span.End()

	items, err := repository.Collect(s.repo.FindAllPageable(ctx, page, perPage))
	return items, record(span, err)
}

func (s *representanteService) FindByID(ctx context.Context, id uuid.UUID) (*model.Representante, error) {
	ctx, span := startSpan(ctx, "RepresentanteService.FindByID", attribute.String("id", id.String()))
	defer span.End()

	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	if r, ok := s.cached(ctx, id); ok {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return r, nil
	}

	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, record(span, err)
	}
	if r == nil {
		return nil, ErrNotFound
	}
	s.store(ctx, r)
	return r, nil
}

func (s *representanteService) FindByNombre(ctx context.Context, nombre string) ([]model.Representante, error) {
	ctx, span := startSpan(ctx, "RepresentanteService.FindByNombre")
	defer span.End()

	items, err := repository.Collect(s.repo.FindByNombre(ctx, nombre))
	return items, record(span, err)
}

func (s *representanteService) Save(ctx context.Context, r *model.Representante) (*model.Representante, error) {
	ctx, span := startSpan(ctx, "RepresentanteService.Save")
	defer span.End()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	span.SetAttributes(attribute.String("id", r.ID.String()))

	stored, err := s.repo.Save(ctx, r)
	if err != nil {
		return nil, record(span, err)
	}
	s.store(ctx, stored)
	return stored, nil
}

func (s *representanteService) Update(ctx context.Context, id uuid.UUID, r *model.Representante) (*model.Representante, error) {
	ctx, span := startSpan(ctx, "RepresentanteService.Update", attribute.String("id", id.String()))
	defer span.End()

	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	r.ID = id

	updated, err := s.repo.Update(ctx, id, r)
	if err != nil {
		return nil, record(span, err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	s.store(ctx, updated)
	return updated, nil
}

func (s *representanteService) Delete(ctx context.Context, id uuid.UUID) (*model.Representante, error) {
	ctx, span := startSpan(ctx, "RepresentanteService.Delete", attribute.String("id", id.String()))
	defer span.End()

	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, record(span, err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	deleted, err := s.repo.Delete(ctx, existing)
	if err != nil {
		return nil, record(span, err)
	}
	s.cache.Delete(ctx, cacheKey(id))
	if deleted == nil {
		// removed concurrently between the lookup and the delete
		return nil, ErrNotFound
	}
	return deleted, nil
}

func (s *representanteService) ReloadSeed(ctx context.Context) (repository.ClearResult, error) {
	ctx, span := startSpan(ctx, "RepresentanteService.ReloadSeed")
	defer span.End()

	res := s.repo.ClearData(ctx)
	switch {
	case !res.OK():
		s.log.Error().Str("event", "seed_clear").Str("status", "error").Err(res.Err).Msg("seed cleanup failed")
	case !res.Skipped:
		if err := s.cache.DeletePrefix(ctx, cachePrefix); err != nil {
			return res, record(span, fmt.Errorf("flush cache: %w", err))
		}
		s.log.Info().Str("event", "seed_clear").Int64("deleted", res.Deleted).Msg("seed cleanup done")
	}

	if err := s.repo.InitData(ctx); err != nil {
		return res, record(span, fmt.Errorf("load seed data: %w", err))
	}
	return res, nil
}

const cachePrefix = "representante:"

func cacheKey(id uuid.UUID) string { return cachePrefix + id.String() }

func (s *representanteService) cached(ctx context.Context, id uuid.UUID) (*model.Representante, bool) {
	b, ok := s.cache.Get(ctx, cacheKey(id))
	if !ok {
		return nil, false
	}
	var r model.Representante
	if err := json.Unmarshal(b, &r); err != nil {
		s.log.Warn().Err(err).Str("key", cacheKey(id)).Msg("dropping undecodable cache entry")
		s.cache.Delete(ctx, cacheKey(id))
		return nil, false
	}
	return &r, true
}

func (s *representanteService) store(ctx context.Context, r *model.Representante) {
	b, err := json.Marshal(r)
	if err != nil {
		return
	}
	s.cache.Set(ctx, cacheKey(r.ID), b, 0)
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

func record(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
