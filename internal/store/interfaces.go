package store

import (
	"context"

	"github.com/MKhiriev/go-food-keeper/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) error
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}
