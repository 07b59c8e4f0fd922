package mocks

import (
	"context"
	"iter"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"representantes/internal/model"
	"representantes/internal/repository"
)

type MockRepresentanteRepository struct {
	mock.Mock
}

var _ repository.RepresentanteRepository = (*MockRepresentanteRepository)(nil)

func (m *MockRepresentanteRepository) InitData(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepresentanteRepository) ClearData(ctx context.Context) repository.ClearResult {
	args := m.Called(ctx)
	return args.Get(0).(repository.ClearResult)
}

func (m *MockRepresentanteRepository) FindAll(ctx context.Context) iter.Seq2[model.Representante, error] {
	args := m.Called(ctx)
	return args.Get(0).(iter.Seq2[model.Representante, error])
}

func (m *MockRepresentanteRepository) FindAllPageable(ctx context.Context, page, perPage int) iter.Seq2[model.Representante, error] {
	args := m.Called(ctx, page, perPage)
	return args.Get(0).(iter.Seq2[model.Representante, error])
}

func (m *MockRepresentanteRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Representante, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Representante), args.Error(1)
}

func (m *MockRepresentanteRepository) FindByNombre(ctx context.Context, nombre string) iter.Seq2[model.Representante, error] {
	args := m.Called(ctx, nombre)
	return args.Get(0).(iter.Seq2[model.Representante, error])
}

func (m *MockRepresentanteRepository) Save(ctx context.Context, r *model.Representante) (*model.Representante, error) {
	args := m.Called(ctx, r)
	if f, ok := args.Get(0).(func(context.Context, *model.Representante) *model.Representante); ok {
		return f(ctx, r), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Representante), args.Error(1)
}

func (m *MockRepresentanteRepository) Update(ctx context.Context, id uuid.UUID, r *model.Representante) (*model.Representante, error) {
	args := m.Called(ctx, id, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Representante), args.Error(1)
}

func (m *MockRepresentanteRepository) Delete(ctx context.Context, r *model.Representante) (*model.Representante, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Representante), args.Error(1)
}
