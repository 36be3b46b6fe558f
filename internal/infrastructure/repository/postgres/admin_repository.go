package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/racedaybr/pitvote/internal/domain/admin"
	qb "github.com/racedaybr/pitvote/internal/platform/querybuilder"
)

type AdminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (admin.Credential, bool, error) {
	query, args, err := qb.Select("id", "username", "password_hash").From("admins").
		Where(qb.Eq("username", username)).
		ToSQL()
	if err != nil {
		return admin.Credential{}, false, fmt.Errorf("build select admin query: %w", err)
	}

	var row adminTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return admin.Credential{}, false, nil
		}
		return admin.Credential{}, false, fmt.Errorf("select admin: %w", err)
	}

	return admin.Credential{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
	}, true, nil
}

// Upsert writes the credential, replacing the password hash when the
// username already exists. Used by the admin seeding command.
func (r *AdminRepository) Upsert(ctx context.Context, cred admin.Credential) error {
	query, args, err := qb.InsertInto("admins").
		Columns("username", "password_hash").
		Values(cred.Username, cred.PasswordHash).
		Suffix("ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert admin query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert admin: %w", err)
	}

	return nil
}
