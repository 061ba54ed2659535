package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto plano,
// se valida y hashea en el caso de uso; la política de contraseñas vive en
// pkg/password, no en tags del DTO).
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest entrada para actualizar un usuario. Campos opcionales:
// un campo ausente conserva el valor actual.
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password"`
}

// UserResponse salida de un usuario. El hash de contraseña nunca se expone.
type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	Deleted   bool       `json:"deleted"`
}
