package repository

import "yggdrasil/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. List devuelve solo filas
// activas; GetByID no filtra por deleted (una empresa borrada sigue
// siendo consultable por id).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByName(name string) (*entity.Company, error)
	GetByDocument(document string) (*entity.Company, error)
	List() ([]*entity.Company, error)
	Update(company *entity.Company) error
}
