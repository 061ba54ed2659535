package entity

import (
	"time"

	"yggdrasil/pkg/cuid"
)

// Company representa una empresa registrada.
type Company struct {
	ID        string
	Name      string
	Document  string // identificación tributaria/registral de la empresa
	CreatedAt time.Time
	UpdatedAt *time.Time // nil hasta la primera mutación
	Deleted   bool
}

// NewCompany construye una empresa nueva con id cuid2, CreatedAt y deleted=false.
func NewCompany(name, document string) *Company {
	return &Company{
		ID:        cuid.Generate(),
		Name:      name,
		Document:  document,
		CreatedAt: time.Now(),
		Deleted:   false,
	}
}

// Touch refresca UpdatedAt.
func (c *Company) Touch() {
	now := time.Now()
	c.UpdatedAt = &now
}

// SoftDelete marca la empresa como borrada y refresca UpdatedAt.
func (c *Company) SoftDelete() {
	c.Deleted = true
	c.Touch()
}
