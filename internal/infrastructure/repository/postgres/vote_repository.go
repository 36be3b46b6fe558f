package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/racedaybr/pitvote/internal/domain/vote"
	qb "github.com/racedaybr/pitvote/internal/platform/querybuilder"
)

type VoteRepository struct {
	db *sqlx.DB
}

func NewVoteRepository(db *sqlx.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// Create inserts the vote and translates constraint violations into domain
// sentinels. The unique index on (race_id, voter_ip) is the final word on
// duplicates, so concurrent submissions need no extra locking here.
func (r *VoteRepository) Create(ctx context.Context, v vote.Vote) (vote.Vote, error) {
	query, args, err := qb.InsertInto("votes").
		Columns("race_id", "pilot_id", "voter_ip").
		Values(v.RaceID, v.PilotID, v.VoterIP).
		Returning("id").
		ToSQL()
	if err != nil {
		return vote.Vote{}, fmt.Errorf("build insert vote query: %w", err)
	}

	if err := r.db.GetContext(ctx, &v.ID, query, args...); err != nil {
		if isUniqueViolation(err) {
			return vote.Vote{}, vote.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return vote.Vote{}, vote.ErrMissingReference
		}
		return vote.Vote{}, fmt.Errorf("insert vote: %w", err)
	}

	return v, nil
}

func (r *VoteRepository) TallyByRace(ctx context.Context, raceID int64) ([]vote.TallyRow, error) {
	query, args, err := qb.Select(
		"p.id AS pilot_id",
		"p.name AS pilot_name",
		"p.team",
		"p.photo",
		"COUNT(v.id) AS votes",
	).From("votes v").
		Join("JOIN pilots p ON p.id = v.pilot_id").
		Where(qb.Eq("v.race_id", raceID)).
		GroupBy("p.id", "p.name", "p.team", "p.photo").
		OrderBy("votes DESC", "p.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build tally query: %w", err)
	}

	var rows []tallyRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tally: %w", err)
	}

	out := make([]vote.TallyRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, tallyRowFromModel(row))
	}

	return out, nil
}

func tallyRowFromModel(row tallyRowModel) vote.TallyRow {
	return vote.TallyRow{
		PilotID:   row.PilotID,
		PilotName: row.PilotName,
		Team:      row.Team,
		Photo:     row.Photo.String,
		Votes:     row.Votes,
	}
}

func (r *VoteRepository) CountByRace(ctx context.Context, raceID int64) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").From("votes").
		Where(qb.Eq("race_id", raceID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count votes query: %w", err)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count votes: %w", err)
	}

	return total, nil
}
