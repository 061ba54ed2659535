// Package testutil provee fakes en memoria de los puertos de persistencia,
// compartidos por los tests de casos de uso y de handlers HTTP. Guardan y
// devuelven copias, como haría una base real: mutar una entidad obtenida no
// afecta al almacén hasta que se llama Update.
package testutil

import (
	"yggdrasil/internal/domain/entity"
	"yggdrasil/internal/domain/repository"
)

var (
	_ repository.CompanyRepository = (*MemCompanyRepo)(nil)
	_ repository.UserRepository    = (*MemUserRepo)(nil)
)

// MemCompanyRepo implementa repository.CompanyRepository sobre un slice.
// Rows queda expuesto para que los tests inspeccionen el estado final.
type MemCompanyRepo struct {
	Rows []entity.Company
}

func (m *MemCompanyRepo) Create(c *entity.Company) error {
	m.Rows = append(m.Rows, *c)
	return nil
}

func (m *MemCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return m.find(func(c entity.Company) bool { return c.ID == id })
}

func (m *MemCompanyRepo) GetByName(name string) (*entity.Company, error) {
	return m.find(func(c entity.Company) bool { return c.Name == name })
}

func (m *MemCompanyRepo) GetByDocument(document string) (*entity.Company, error) {
	return m.find(func(c entity.Company) bool { return c.Document == document })
}

func (m *MemCompanyRepo) List() ([]*entity.Company, error) {
	var list []*entity.Company
	for i := range m.Rows {
		if !m.Rows[i].Deleted {
			cp := m.Rows[i]
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (m *MemCompanyRepo) Update(c *entity.Company) error {
	for i := range m.Rows {
		if m.Rows[i].ID == c.ID {
			m.Rows[i] = *c
		}
	}
	return nil
}

func (m *MemCompanyRepo) find(match func(entity.Company) bool) (*entity.Company, error) {
	for i := range m.Rows {
		if match(m.Rows[i]) {
			cp := m.Rows[i]
			return &cp, nil
		}
	}
	return nil, nil
}

// MemUserRepo implementa repository.UserRepository sobre un slice.
type MemUserRepo struct {
	Rows []entity.User
}

func (m *MemUserRepo) Create(u *entity.User) error {
	m.Rows = append(m.Rows, *u)
	return nil
}

func (m *MemUserRepo) GetByID(id string) (*entity.User, error) {
	return m.find(func(u entity.User) bool { return u.ID == id })
}

func (m *MemUserRepo) GetByEmail(email string) (*entity.User, error) {
	return m.find(func(u entity.User) bool { return u.Email == email })
}

func (m *MemUserRepo) ListByDeleted(deleted bool) ([]*entity.User, error) {
	var list []*entity.User
	for i := range m.Rows {
		if m.Rows[i].Deleted == deleted {
			cp := m.Rows[i]
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (m *MemUserRepo) Update(u *entity.User) error {
	for i := range m.Rows {
		if m.Rows[i].ID == u.ID {
			m.Rows[i] = *u
		}
	}
	return nil
}

func (m *MemUserRepo) find(match func(entity.User) bool) (*entity.User, error) {
	for i := range m.Rows {
		if match(m.Rows[i]) {
			cp := m.Rows[i]
			return &cp, nil
		}
	}
	return nil, nil
}
