package admin

import "context"

// Repository describes admin credential lookups from use cases.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (Credential, bool, error)
}
