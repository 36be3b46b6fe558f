package postgres

import "database/sql"

type pilotTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Team string `db:"team"`
	// photo is nullable; rows without one read back as the empty string.
	Photo sql.NullString `db:"photo"`
}
