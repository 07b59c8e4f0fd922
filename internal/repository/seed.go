package repository

import (
	"github.com/google/uuid"

	"representantes/internal/model"
)

var seed = []model.Representante{
	{
		ID:     uuid.MustParse("b39a2fd2-f7d7-405d-b73c-b68a8dedbcdf"),
		Nombre: "Pepe Perez",
		Email:  "pepe@perez.com",
	},
	{
		ID:     uuid.MustParse("c53062e4-31ea-4f5e-a99d-36c228ed01a3"),
		Nombre: "Ana Lopez",
		Email:  "ana@lopez.com",
	},
	{
		ID:     uuid.MustParse("a1b2c3d4-1111-4c2a-9d3e-5f6a7b8c9d0e"),
		Nombre: "Jose Luis Gonzalez",
		Email:  "joseluis@gonzalez.com",
	},
	{
		ID:     uuid.MustParse("e4f5a6b7-2222-4d3b-8e4f-6a7b8c9d0e1f"),
		Nombre: "Maria Sanchez",
		Email:  "maria@sanchez.com",
	},
}

// Seed returns a copy of the fixed demo rows loaded when DB_INIT_DATA is enabled.
func Seed() []model.Representante {
	out := make([]model.Representante, len(seed))
	copy(out, seed)
	return out
}
