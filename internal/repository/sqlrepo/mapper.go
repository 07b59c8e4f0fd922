package sqlrepo

import (
	"fmt"

	"github.com/google/uuid"

	"representantes/internal/model"
)

// representanteColumns lists the table columns in the order of scanTargets.
const representanteColumns = "id, nombre, email"

// representanteRow is the persistence shape of model.Representante.
type representanteRow struct {
	ID     string
	Nombre string
	Email  string
}

func (r *representanteRow) scanTargets() []any {
	return []any{&r.ID, &r.Nombre, &r.Email}
}

func (r representanteRow) args() []any {
	return []any{r.ID, r.Nombre, r.Email}
}

func toEntity(m model.Representante) representanteRow {
	return representanteRow{
		ID:     m.ID.String(),
		Nombre: m.Nombre,
		Email:  m.Email,
	}
}

func (r representanteRow) toModel() (model.Representante, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return model.Representante{}, fmt.Errorf("representante row has invalid id %q: %w", r.ID, err)
	}
	return model.Representante{
		ID:     id,
		Nombre: r.Nombre,
		Email:  r.Email,
	}, nil
}
