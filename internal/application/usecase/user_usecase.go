package usecase

import (
	"fmt"

	"yggdrasil/internal/application/dto"
	"yggdrasil/internal/domain"
	"yggdrasil/internal/domain/entity"
	"yggdrasil/internal/domain/repository"
	"yggdrasil/pkg/cuid"
	"yggdrasil/pkg/password"
)

// UserUseCase aplica las reglas de negocio para usuarios, incluida la
// política de contraseñas y su hashing.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// ListByStatus lista usuarios por estado: "active" equivale a deleted=false
// e "inactive" a deleted=true. Un estado desconocido se trata como activo.
func (uc *UserUseCase) ListByStatus(status string) ([]dto.UserResponse, error) {
	deleted := status == entity.StatusInactive
	list, err := uc.repo.ListByDeleted(deleted)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *userToResponse(u))
	}
	return items, nil
}

// GetByID obtiene un usuario por id, borrado o no.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.mustExist(id)
	if err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// Create crea un usuario. Primero el chequeo de unicidad de email (contra
// todas las filas, borradas incluidas), después la política de contraseñas y
// el hash bcrypt. El texto plano nunca se persiste; ninguna escritura ocurre
// si una validación falla.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := uc.checkEmailFree(in.Email, ""); err != nil {
		return nil, err
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := entity.NewUser(in.Email, hash)
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// Update actualiza email y/o contraseña. Orden: existencia, unicidad de
// email (solo si viene email, excluyendo al propio registro) y hash de la
// contraseña solo si fue suministrada — una actualización sin contraseña
// conserva el hash actual en lugar de hashear la cadena vacía (el linaje
// original hacía fallar todo update sin password; ver DESIGN.md).
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.mustExist(id)
	if err != nil {
		return nil, err
	}
	if in.Email != nil {
		if err := uc.checkEmailFree(*in.Email, id); err != nil {
			return nil, err
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := password.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.Touch()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// Remove marca el usuario como borrado. Falla con domain.ErrNotFound si el
// id no resuelve o si ya estaba borrado.
func (uc *UserUseCase) Remove(id string) error {
	user, err := uc.mustExist(id)
	if err != nil {
		return err
	}
	if user.Deleted {
		return fmt.Errorf("%w: el usuario %s ya está borrado", domain.ErrNotFound, id)
	}
	user.SoftDelete()
	return uc.repo.Update(user)
}

func (uc *UserUseCase) mustExist(id string) (*entity.User, error) {
	if !cuid.IsValid(id) {
		return nil, fmt.Errorf("%w: no se encontró ningún usuario con el id %s", domain.ErrNotFound, id)
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: no se encontró ningún usuario con el id %s", domain.ErrNotFound, id)
	}
	return user, nil
}

// checkEmailFree falla con ErrDuplicateData si otro usuario (selfID
// excluido, borrado o no) ya registró ese email.
func (uc *UserUseCase) checkEmailFree(email, selfID string) error {
	existing, err := uc.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%w: ya existe un usuario con el email %q", domain.ErrDuplicateData, email)
	}
	return nil
}

func userToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Deleted:   u.Deleted,
	}
}
