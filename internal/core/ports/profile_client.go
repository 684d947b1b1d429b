package ports

import (
	"context"

	"courierapp/internal/core/domain/model/user"
)

// ProfileClient fetches the authenticated courier's own user record from the
// backend.
type ProfileClient interface {
	GetMe(ctx context.Context) (*user.User, error)
}
