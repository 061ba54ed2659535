package entity

import (
	"time"

	"yggdrasil/pkg/cuid"
)

// Estados de usuario expuestos por la API. Active corresponde a deleted=false
// e Inactive a deleted=true (borrado lógico).
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca texto plano después de persistir
	CreatedAt    time.Time
	UpdatedAt    *time.Time // nil hasta la primera mutación
	Deleted      bool
}

// NewUser construye un usuario nuevo con id cuid2, CreatedAt y deleted=false.
// Reemplaza los hooks @BeforeInsert del ORM original: los campos automáticos
// se asignan aquí, de forma explícita, y el servicio decide cuándo llamarlo.
func NewUser(email, passwordHash string) *User {
	return &User{
		ID:           cuid.Generate(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		Deleted:      false,
	}
}

// Touch refresca UpdatedAt. Se invoca en toda mutación, incluido el borrado lógico.
func (u *User) Touch() {
	now := time.Now()
	u.UpdatedAt = &now
}

// SoftDelete marca el usuario como borrado y refresca UpdatedAt.
// No hay borrado físico: la fila permanece en la tabla.
func (u *User) SoftDelete() {
	u.Deleted = true
	u.Touch()
}
