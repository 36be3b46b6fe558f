package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/racedaybr/pitvote/internal/domain/pilot"
	qb "github.com/racedaybr/pitvote/internal/platform/querybuilder"
)

type PilotRepository struct {
	db *sqlx.DB
}

var pilotSelectColumns = []string{"id", "name", "team", "photo"}

func NewPilotRepository(db *sqlx.DB) *PilotRepository {
	return &PilotRepository{db: db}
}

func (r *PilotRepository) List(ctx context.Context) ([]pilot.Pilot, error) {
	query, args, err := qb.Select(pilotSelectColumns...).From("pilots").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select pilots query: %w", err)
	}

	var rows []pilotTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select pilots: %w", err)
	}

	out := make([]pilot.Pilot, 0, len(rows))
	for _, row := range rows {
		out = append(out, pilotFromRow(row))
	}

	return out, nil
}

func (r *PilotRepository) GetByID(ctx context.Context, pilotID int64) (pilot.Pilot, bool, error) {
	query, args, err := qb.Select(pilotSelectColumns...).From("pilots").
		Where(qb.Eq("id", pilotID)).
		ToSQL()
	if err != nil {
		return pilot.Pilot{}, false, fmt.Errorf("build select pilot query: %w", err)
	}

	var row pilotTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return pilot.Pilot{}, false, nil
		}
		return pilot.Pilot{}, false, fmt.Errorf("select pilot: %w", err)
	}

	return pilotFromRow(row), true, nil
}

func (r *PilotRepository) Create(ctx context.Context, p pilot.Pilot) (pilot.Pilot, error) {
	query, args, err := qb.InsertInto("pilots").
		Columns("name", "team", "photo").
		Values(p.Name, p.Team, p.Photo).
		Returning("id").
		ToSQL()
	if err != nil {
		return pilot.Pilot{}, fmt.Errorf("build insert pilot query: %w", err)
	}

	if err := r.db.GetContext(ctx, &p.ID, query, args...); err != nil {
		return pilot.Pilot{}, fmt.Errorf("insert pilot: %w", err)
	}

	return p, nil
}

func (r *PilotRepository) Update(ctx context.Context, p pilot.Pilot) (bool, error) {
	query, args, err := qb.Update("pilots").
		Set("name", p.Name).
		Set("team", p.Team).
		Set("photo", p.Photo).
		Where(qb.Eq("id", p.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update pilot query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update pilot: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update pilot rows affected: %w", err)
	}

	return affected > 0, nil
}

// Delete relies on ON DELETE CASCADE for votes and the leaderboard row.
func (r *PilotRepository) Delete(ctx context.Context, pilotID int64) (bool, error) {
	query, args, err := qb.DeleteFrom("pilots").
		Where(qb.Eq("id", pilotID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete pilot query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete pilot: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete pilot rows affected: %w", err)
	}

	return affected > 0, nil
}

func pilotFromRow(row pilotTableModel) pilot.Pilot {
	return pilot.Pilot{
		ID:    row.ID,
		Name:  row.Name,
		Team:  row.Team,
		Photo: row.Photo.String,
	}
}
