package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Document string `json:"document" validate:"required,min=1,max=20"`
}

// UpdateCompanyRequest entrada para actualizar una empresa. Ambos campos se
// persisten tal cual llegan (PUT, no PATCH).
type UpdateCompanyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Document string `json:"document" validate:"required,min=1,max=20"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Document  string     `json:"document"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	Deleted   bool       `json:"deleted"`
}
