package store

import (
	"context"

	"github.com/dailyolive/olive-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// List retrieves all users in insertion order.
	List(ctx context.Context) ([]domain.User, error)
}
