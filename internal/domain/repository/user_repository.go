package repository

import "github.com/gifted-solutions/storefront-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (back-office).
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
