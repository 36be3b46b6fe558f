package leaderboard

// Entry is one pilot's cumulative win count across closed races, joined with
// pilot data for presentation. Wins never decrease.
type Entry struct {
	PilotID   int64
	PilotName string
	Team      string
	Photo     string
	Wins      int64
}
