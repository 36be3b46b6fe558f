package pilot

import "fmt"

// Pilot is a driver that can receive votes in a race.
type Pilot struct {
	ID    int64
	Name  string
	Team  string
	Photo string
}

func (p Pilot) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("pilot name is required")
	}
	if p.Team == "" {
		return fmt.Errorf("pilot team is required")
	}

	return nil
}
