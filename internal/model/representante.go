package model

import "github.com/google/uuid"

// Representante is an agent registered in the system.
// This is a pure domain model with no database-specific dependencies or tags.
// The identifier is assigned once, before the first save, and never changes.
type Representante struct {
	ID     uuid.UUID `json:"id"`
	Nombre string    `json:"nombre"`
	Email  string    `json:"email"`
}
