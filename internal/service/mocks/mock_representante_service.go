package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"representantes/internal/model"
	"representantes/internal/repository"
	"representantes/internal/service"
)

type MockRepresentanteService struct {
	mock.Mock
}

var _ service.RepresentanteService = (*MockRepresentanteService)(nil)

func (m *MockRepresentanteService) FindAll(ctx context.Context) ([]model.Representante, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Representante), args.Error(1)
}

func (m *MockRepresentanteService) FindAllPageable(ctx context.Context, page, perPage int) ([]model.Representante, error) {
	args := m.Called(ctx, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Representante), args.Error(1)
}

func (m *MockRepresentanteService) FindByID(ctx context.Context, id uuid.UUID) (*model.Representante, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Representante), args.Error(1)
}

func (m *MockRepresentanteService) FindByNombre(ctx context.Context, nombre string) ([]model.Representante, error) {
	args := m.Called(ctx, nombre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Representante), args.Error(1)
}

func (m *MockRepresentanteService) Save(ctx context.Context, r *model.Representante) (*model.Representante, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Representante), args.Error(1)
}

func (m *MockRepresentanteService) Update(ctx context.Context, id uuid.UUID, r *model.Representante) (*model.Representante, error) {
	args := m.Called(ctx, id, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Representante), args.Error(1)
}

func (m *MockRepresentanteService) Delete(ctx context.Context, id uuid.UUID) (*model.Representante, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Representante), args.Error(1)
}

func (m *MockRepresentanteService) ReloadSeed(ctx context.Context) (repository.ClearResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.ClearResult), args.Error(1)
}

type MockFileService struct {
	mock.Mock
}

var _ service.FileService = (*MockFileService)(nil)

func (m *MockFileService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*service.StoredFile, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StoredFile), args.Error(1)
}

func (m *MockFileService) Get(ctx context.Context, name string) (io.ReadCloser, *service.StoredFile, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*service.StoredFile), args.Error(2)
}

func (m *MockFileService) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
