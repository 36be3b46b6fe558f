package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/racedaybr/pitvote/internal/domain/race"
	qb "github.com/racedaybr/pitvote/internal/platform/querybuilder"
)

type RaceRepository struct {
	db *sqlx.DB
}

var raceSelectColumns = []string{"id", "name", "race_date", "closed"}

func NewRaceRepository(db *sqlx.DB) *RaceRepository {
	return &RaceRepository{db: db}
}

func (r *RaceRepository) List(ctx context.Context) ([]race.Race, error) {
	query, args, err := qb.Select(raceSelectColumns...).From("races").
		OrderBy("race_date DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select races query: %w", err)
	}

	var rows []raceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select races: %w", err)
	}

	out := make([]race.Race, 0, len(rows))
	for _, row := range rows {
		out = append(out, raceFromRow(row))
	}

	return out, nil
}

func (r *RaceRepository) GetByID(ctx context.Context, raceID int64) (race.Race, bool, error) {
	query, args, err := qb.Select(raceSelectColumns...).From("races").
		Where(qb.Eq("id", raceID)).
		ToSQL()
	if err != nil {
		return race.Race{}, false, fmt.Errorf("build select race query: %w", err)
	}

	var row raceTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return race.Race{}, false, nil
		}
		return race.Race{}, false, fmt.Errorf("select race: %w", err)
	}

	return raceFromRow(row), true, nil
}

func (r *RaceRepository) Create(ctx context.Context, item race.Race) (race.Race, error) {
	query, args, err := qb.InsertInto("races").
		Columns("name", "race_date", "closed").
		Values(item.Name, item.Date, item.Closed).
		Returning("id").
		ToSQL()
	if err != nil {
		return race.Race{}, fmt.Errorf("build insert race query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return race.Race{}, fmt.Errorf("insert race: %w", err)
	}

	return item, nil
}

// Update edits name and date only. The closed column belongs to CloseVoting
// and is never part of this statement, so an edit cannot reopen a race.
func (r *RaceRepository) Update(ctx context.Context, item race.Race) (bool, error) {
	query, args, err := qb.Update("races").
		Set("name", item.Name).
		Set("race_date", item.Date).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update race query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update race: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update race rows affected: %w", err)
	}

	return affected > 0, nil
}

// Delete removes the race's votes and then the race in one transaction,
// without leaning on the schema cascade.
func (r *RaceRepository) Delete(ctx context.Context, raceID int64) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx delete race: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	votesQuery, votesArgs, err := qb.DeleteFrom("votes").
		Where(qb.Eq("race_id", raceID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete race votes query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, votesQuery, votesArgs...); err != nil {
		return false, fmt.Errorf("delete race votes: %w", err)
	}

	raceQuery, raceArgs, err := qb.DeleteFrom("races").
		Where(qb.Eq("id", raceID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete race query: %w", err)
	}
	result, err := tx.ExecContext(ctx, raceQuery, raceArgs...)
	if err != nil {
		return false, fmt.Errorf("delete race: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete race rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete race tx: %w", err)
	}

	return affected > 0, nil
}

// CloseVoting marks the race closed, picks the winner and bumps the
// leaderboard inside one transaction. The guarded UPDATE decides races
// between concurrent closers: only the caller that flips the flag counts
// the win.
func (r *RaceRepository) CloseVoting(ctx context.Context, raceID int64) (race.CloseOutcome, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return race.CloseOutcome{}, false, fmt.Errorf("begin tx close voting: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx, `UPDATE races SET closed = TRUE WHERE id = $1 AND NOT closed`, raceID)
	if err != nil {
		return race.CloseOutcome{}, false, fmt.Errorf("close race: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return race.CloseOutcome{}, false, fmt.Errorf("close race rows affected: %w", err)
	}
	if affected == 0 {
		var closed bool
		if err := tx.GetContext(ctx, &closed, `SELECT closed FROM races WHERE id = $1`, raceID); err != nil {
			if isNotFound(err) {
				return race.CloseOutcome{}, false, nil
			}
			return race.CloseOutcome{}, false, fmt.Errorf("check race state: %w", err)
		}

		return race.CloseOutcome{AlreadyClosed: true}, true, nil
	}

	winnerQuery, winnerArgs, err := qb.Select("pilot_id").From("votes").
		Where(qb.Eq("race_id", raceID)).
		GroupBy("pilot_id").
		OrderBy("COUNT(*) DESC", "pilot_id").
		Limit(1).
		ToSQL()
	if err != nil {
		return race.CloseOutcome{}, false, fmt.Errorf("build winner query: %w", err)
	}

	outcome := race.CloseOutcome{}
	var winnerPilotID int64
	if err := tx.GetContext(ctx, &winnerPilotID, winnerQuery, winnerArgs...); err != nil {
		if !isNotFound(err) {
			return race.CloseOutcome{}, false, fmt.Errorf("select race winner: %w", err)
		}
		// No votes: the race closes without a leaderboard change.
	} else {
		outcome.HasWinner = true
		outcome.WinnerPilotID = winnerPilotID

		upsertQuery, upsertArgs, err := qb.InsertInto("leaderboard").
			Columns("pilot_id", "wins").
			Values(winnerPilotID, 1).
			Suffix("ON CONFLICT (pilot_id) DO UPDATE SET wins = leaderboard.wins + 1").
			ToSQL()
		if err != nil {
			return race.CloseOutcome{}, false, fmt.Errorf("build leaderboard upsert query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, upsertQuery, upsertArgs...); err != nil {
			return race.CloseOutcome{}, false, fmt.Errorf("upsert leaderboard win: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return race.CloseOutcome{}, false, fmt.Errorf("commit close voting tx: %w", err)
	}

	return outcome, true, nil
}

func raceFromRow(row raceTableModel) race.Race {
	return race.Race{
		ID:     row.ID,
		Name:   row.Name,
		Date:   row.Date,
		Closed: row.Closed,
	}
}
