package repository

import "yggdrasil/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los GetBy* devuelven (nil, nil) cuando no hay fila que coincida.
// Las búsquedas por email NO filtran por deleted: una fila borrada
// lógicamente sigue bloqueando la reutilización de su email.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	ListByDeleted(deleted bool) ([]*entity.User, error)
	Update(user *entity.User) error
}
