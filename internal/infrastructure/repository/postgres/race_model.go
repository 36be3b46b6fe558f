package postgres

import "time"

type raceTableModel struct {
	ID     int64     `db:"id"`
	Name   string    `db:"name"`
	Date   time.Time `db:"race_date"`
	Closed bool      `db:"closed"`
}
