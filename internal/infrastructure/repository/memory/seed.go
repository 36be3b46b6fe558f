package memory

import (
	"time"

	"github.com/racedaybr/pitvote/internal/domain/pilot"
	"github.com/racedaybr/pitvote/internal/domain/race"
)

// SeedPilots returns a small grid for local development.
func SeedPilots() []pilot.Pilot {
	return []pilot.Pilot{
		{Name: "Gabriel Fortes", Team: "Escuderia Horizonte", Photo: "https://cdn.pitvote.dev/pilots/fortes.png"},
		{Name: "Rafael Cunha", Team: "Escuderia Horizonte", Photo: "https://cdn.pitvote.dev/pilots/cunha.png"},
		{Name: "Thiago Salles", Team: "Vento Sul Racing", Photo: "https://cdn.pitvote.dev/pilots/salles.png"},
		{Name: "Bruno Arraes", Team: "Vento Sul Racing", Photo: "https://cdn.pitvote.dev/pilots/arraes.png"},
	}
}

// SeedRaces returns two open rounds for local development.
func SeedRaces() []race.Race {
	return []race.Race{
		{Name: "GP Interlagos", Date: time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{Name: "GP Goiânia", Date: time.Date(2026, time.April, 12, 0, 0, 0, 0, time.UTC)},
	}
}

// SeedStore builds a store preloaded with the development grid.
func SeedStore() *Store {
	s := NewStore()
	for _, p := range SeedPilots() {
		s.nextPilotID++
		p.ID = s.nextPilotID
		s.pilots[p.ID] = p
	}
	for _, r := range SeedRaces() {
		s.nextRaceID++
		r.ID = s.nextRaceID
		s.races[r.ID] = r
	}

	return s
}
