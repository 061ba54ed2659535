package usecase

import (
	"fmt"

	"yggdrasil/internal/application/dto"
	"yggdrasil/internal/domain"
	"yggdrasil/internal/domain/entity"
	"yggdrasil/internal/domain/repository"
	"yggdrasil/pkg/cuid"
)

// CompanyUseCase aplica las reglas de negocio para empresas: chequeos de
// unicidad antes de escribir, existencia y guardas de borrado lógico.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// List devuelve las empresas activas (deleted = false).
func (uc *CompanyUseCase) List() ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *companyToResponse(c))
	}
	return items, nil
}

// GetByID obtiene una empresa por id, borrada o no. Devuelve
// domain.ErrNotFound si el id no resuelve.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.mustExist(id)
	if err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// Create crea una empresa nueva. Orden de validación: nombre, luego
// documento (gana el primer fallo). Los chequeos incluyen filas borradas:
// una empresa con borrado lógico sigue bloqueando nombre y documento.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := uc.checkNameFree(in.Name, ""); err != nil {
		return nil, err
	}
	if err := uc.checkDocumentFree(in.Document, ""); err != nil {
		return nil, err
	}
	company := entity.NewCompany(in.Name, in.Document)
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// Update actualiza nombre y documento. El orden de validación reproduce el
// comportamiento histórico del servicio: nombre, documento y existencia AL
// FINAL, por lo que un duplicado puede reportarse antes de confirmar que el
// id exista. La colisión solo cuenta contra OTRO registro: conservar el
// nombre o documento propio no es duplicado.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := uc.checkNameFree(in.Name, id); err != nil {
		return nil, err
	}
	if err := uc.checkDocumentFree(in.Document, id); err != nil {
		return nil, err
	}
	company, err := uc.mustExist(id)
	if err != nil {
		return nil, err
	}
	company.Name = in.Name
	company.Document = in.Document
	company.Touch()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// Remove marca la empresa como borrada (borrado lógico). Falla con
// domain.ErrNotFound si el id no resuelve o si ya estaba borrada.
func (uc *CompanyUseCase) Remove(id string) error {
	company, err := uc.mustExist(id)
	if err != nil {
		return err
	}
	if company.Deleted {
		return fmt.Errorf("%w: la empresa %s ya está borrada", domain.ErrNotFound, id)
	}
	company.SoftDelete()
	return uc.repo.Update(company)
}

func (uc *CompanyUseCase) mustExist(id string) (*entity.Company, error) {
	if !cuid.IsValid(id) {
		return nil, fmt.Errorf("%w: no se encontró ninguna empresa con el id %s", domain.ErrNotFound, id)
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: no se encontró ninguna empresa con el id %s", domain.ErrNotFound, id)
	}
	return company, nil
}

// checkNameFree falla con ErrDuplicateData si otra empresa (selfID excluido,
// borrada o no) ya registró ese nombre.
func (uc *CompanyUseCase) checkNameFree(name, selfID string) error {
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%w: ya existe una empresa con el nombre %q", domain.ErrDuplicateData, name)
	}
	return nil
}

// checkDocumentFree falla con ErrDuplicateData si otra empresa ya registró
// ese documento.
func (uc *CompanyUseCase) checkDocumentFree(document, selfID string) error {
	existing, err := uc.repo.GetByDocument(document)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%w: ya existe una empresa con el documento %q", domain.ErrDuplicateData, document)
	}
	return nil
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Document:  c.Document,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Deleted:   c.Deleted,
	}
}
