package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"yggdrasil/internal/domain"
	"yggdrasil/internal/domain/entity"
	"yggdrasil/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario. El índice único de email convierte la
// carrera check-then-act en domain.ErrDuplicateData.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, created_at, updated_at, deleted)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash,
		user.CreatedAt, user.UpdatedAt, user.Deleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateData
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID, borrado o no.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getBy("id", id)
}

// GetByEmail obtiene un usuario por email, sin filtrar por deleted: un
// usuario borrado sigue bloqueando su email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getBy("email", email)
}

func (r *UserRepo) getBy(field, value string) (*entity.User, error) {
	query := fmt.Sprintf(`
		SELECT id, email, password_hash, created_at, updated_at, deleted
		FROM users WHERE %s = $1 LIMIT 1`, field)
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, value).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt, &u.Deleted,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by %s: %w", field, err)
	}
	return &u, nil
}

// ListByDeleted lista usuarios por el flag deleted en orden de inserción.
func (r *UserRepo) ListByDeleted(deleted bool) ([]*entity.User, error) {
	query := `
		SELECT id, email, password_hash, created_at, updated_at, deleted
		FROM users WHERE deleted = $1 ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query, deleted)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt, &u.Deleted); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza un usuario (email, hash, updated_at y deleted).
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, updated_at = $4, deleted = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.UpdatedAt, user.Deleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateData
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
