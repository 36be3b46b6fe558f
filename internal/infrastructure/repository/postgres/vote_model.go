package postgres

import "database/sql"

type voteTableModel struct {
	ID      int64  `db:"id"`
	RaceID  int64  `db:"race_id"`
	PilotID int64  `db:"pilot_id"`
	VoterIP string `db:"voter_ip"`
}

type tallyRowModel struct {
	PilotID   int64          `db:"pilot_id"`
	PilotName string         `db:"pilot_name"`
	Team      string         `db:"team"`
	Photo     sql.NullString `db:"photo"`
	Votes     int64          `db:"votes"`
}
