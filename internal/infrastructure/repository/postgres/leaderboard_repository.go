package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/racedaybr/pitvote/internal/domain/leaderboard"
	qb "github.com/racedaybr/pitvote/internal/platform/querybuilder"
)

type LeaderboardRepository struct {
	db *sqlx.DB
}

func NewLeaderboardRepository(db *sqlx.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

func (r *LeaderboardRepository) List(ctx context.Context) ([]leaderboard.Entry, error) {
	query, args, err := qb.Select(
		"l.pilot_id",
		"p.name AS pilot_name",
		"p.team",
		"p.photo",
		"l.wins",
	).From("leaderboard l").
		Join("JOIN pilots p ON p.id = l.pilot_id").
		OrderBy("l.wins DESC", "p.name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build leaderboard query: %w", err)
	}

	var rows []leaderboardRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leaderboard: %w", err)
	}

	out := make([]leaderboard.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaderboardEntryFromRow(row))
	}

	return out, nil
}

func leaderboardEntryFromRow(row leaderboardRowModel) leaderboard.Entry {
	return leaderboard.Entry{
		PilotID:   row.PilotID,
		PilotName: row.PilotName,
		Team:      row.Team,
		Photo:     row.Photo.String,
		Wins:      row.Wins,
	}
}
