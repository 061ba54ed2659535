package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"yggdrasil/internal/domain"
	"yggdrasil/internal/domain/entity"
	"yggdrasil/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persiste una nueva empresa. Si el índice único de nombre o documento
// rechaza la fila (carrera entre dos creates concurrentes), devuelve
// domain.ErrDuplicateData: el índice es el punto real de enforcement, el
// chequeo del servicio solo da el fallo rápido.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, document, created_at, updated_at, deleted)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.Name, company.Document,
		company.CreatedAt, company.UpdatedAt, company.Deleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateData
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID, borrada o no.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.getBy("id", id)
}

// GetByName obtiene una empresa por nombre, sin filtrar por deleted.
func (r *CompanyRepo) GetByName(name string) (*entity.Company, error) {
	return r.getBy("name", name)
}

// GetByDocument obtiene una empresa por documento, sin filtrar por deleted.
func (r *CompanyRepo) GetByDocument(document string) (*entity.Company, error) {
	return r.getBy("document", document)
}

func (r *CompanyRepo) getBy(field, value string) (*entity.Company, error) {
	query := fmt.Sprintf(`
		SELECT id, name, document, created_at, updated_at, deleted
		FROM companies WHERE %s = $1 LIMIT 1`, field)
	var c entity.Company
	err := r.pool.QueryRow(context.Background(), query, value).Scan(
		&c.ID, &c.Name, &c.Document, &c.CreatedAt, &c.UpdatedAt, &c.Deleted,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by %s: %w", field, err)
	}
	return &c, nil
}

// List devuelve las empresas activas (deleted = false) en orden de inserción.
func (r *CompanyRepo) List() ([]*entity.Company, error) {
	query := `
		SELECT id, name, document, created_at, updated_at, deleted
		FROM companies WHERE deleted = false ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Document, &c.CreatedAt, &c.UpdatedAt, &c.Deleted); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una empresa existente (incluido el flag deleted: el
// borrado lógico es un UPDATE, nunca un DELETE físico).
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, document = $3, updated_at = $4, deleted = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.Name, company.Document, company.UpdatedAt, company.Deleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateData
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}
