package postgres

import "database/sql"

type leaderboardRowModel struct {
	PilotID   int64          `db:"pilot_id"`
	PilotName string         `db:"pilot_name"`
	Team      string         `db:"team"`
	Photo     sql.NullString `db:"photo"`
	Wins      int64          `db:"wins"`
}
