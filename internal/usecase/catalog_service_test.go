package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/racedaybr/pitvote/internal/domain/pilot"
	"github.com/racedaybr/pitvote/internal/domain/race"
	"github.com/racedaybr/pitvote/internal/infrastructure/repository/memory"
)

func TestCatalogService_PilotCRUD(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	catalog := NewCatalogService(store.Pilots(), store.Races())

	created, err := catalog.CreatePilot(ctx, pilot.Pilot{Name: "Gabriel Fortes", Team: "Escuderia Horizonte"})
	if err != nil {
		t.Fatalf("create pilot: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned pilot id")
	}

	t.Run("validation", func(t *testing.T) {
		if _, err := catalog.CreatePilot(ctx, pilot.Pilot{Team: "Vento Sul Racing"}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
		}
		if _, err := catalog.CreatePilot(ctx, pilot.Pilot{Name: "Thiago Salles"}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for missing team, got %v", err)
		}
	})

	t.Run("get", func(t *testing.T) {
		got, err := catalog.GetPilot(ctx, created.ID)
		if err != nil {
			t.Fatalf("get pilot: %v", err)
		}
		if got.Name != "Gabriel Fortes" {
			t.Fatalf("unexpected pilot: %+v", got)
		}
		if _, err := catalog.GetPilot(ctx, 999); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("update", func(t *testing.T) {
		created.Team = "Vento Sul Racing"
		updated, err := catalog.UpdatePilot(ctx, created)
		if err != nil {
			t.Fatalf("update pilot: %v", err)
		}
		if updated.Team != "Vento Sul Racing" {
			t.Fatalf("unexpected team after update: %q", updated.Team)
		}

		missing := created
		missing.ID = 999
		if _, err := catalog.UpdatePilot(ctx, missing); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := catalog.DeletePilot(ctx, created.ID); err != nil {
			t.Fatalf("delete pilot: %v", err)
		}
		if err := catalog.DeletePilot(ctx, created.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound on second delete, got %v", err)
		}
	})
}

func TestCatalogService_DeletePilotCascadesVotesAndLeaderboard(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	catalog := NewCatalogService(store.Pilots(), store.Races())
	voting := NewVotingService(store.Pilots(), store.Races(), store.Votes(), store.Leaderboard())

	p := mustCreatePilot(t, catalog, "Gabriel Fortes", "Escuderia Horizonte")
	r := mustCreateRace(t, catalog, "GP Interlagos")
	if _, err := voting.CastVote(ctx, r.ID, p.ID, "203.0.113.1"); err != nil {
		t.Fatalf("cast vote: %v", err)
	}
	if _, err := voting.CloseVoting(ctx, r.ID); err != nil {
		t.Fatalf("close voting: %v", err)
	}

	if err := catalog.DeletePilot(ctx, p.ID); err != nil {
		t.Fatalf("delete pilot: %v", err)
	}

	entries, err := voting.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected leaderboard row removed with pilot, got %+v", entries)
	}

	result, err := voting.Tally(ctx, r.ID)
	if err != nil {
		t.Fatalf("tally: %v", err)
	}
	if result.TotalVotes != 0 {
		t.Fatalf("expected votes removed with pilot, got %d", result.TotalVotes)
	}
}

func TestCatalogService_RaceCRUD(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	catalog := NewCatalogService(store.Pilots(), store.Races())

	created, err := catalog.CreateRace(ctx, race.Race{
		Name:   "GP Interlagos",
		Date:   time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		Closed: true,
	})
	if err != nil {
		t.Fatalf("create race: %v", err)
	}
	if created.Closed {
		t.Fatalf("expected new race to start open")
	}

	t.Run("validation", func(t *testing.T) {
		if _, err := catalog.CreateRace(ctx, race.Race{Date: created.Date}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
		}
		if _, err := catalog.CreateRace(ctx, race.Race{Name: "GP"}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for missing date, got %v", err)
		}
	})

	t.Run("update keeps closed flag", func(t *testing.T) {
		voting := NewVotingService(store.Pilots(), store.Races(), store.Votes(), store.Leaderboard())
		if _, err := voting.CloseVoting(ctx, created.ID); err != nil {
			t.Fatalf("close voting: %v", err)
		}

		edit := created
		edit.Name = "GP São Paulo"
		edit.Closed = false
		updated, err := catalog.UpdateRace(ctx, edit)
		if err != nil {
			t.Fatalf("update race: %v", err)
		}
		if !updated.Closed {
			t.Fatalf("expected update to preserve the closed flag")
		}
		if updated.Name != "GP São Paulo" {
			t.Fatalf("unexpected name after update: %q", updated.Name)
		}

		p := mustCreatePilot(t, catalog, "Gabriel Fortes", "Escuderia Horizonte")
		if _, err := voting.CastVote(ctx, created.ID, p.ID, "203.0.113.40"); !errors.Is(err, ErrRaceClosed) {
			t.Fatalf("expected ErrRaceClosed after edit, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := catalog.DeleteRace(ctx, created.ID); err != nil {
			t.Fatalf("delete race: %v", err)
		}
		if _, err := catalog.GetRace(ctx, created.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestCatalogService_ListRacesNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	catalog := NewCatalogService(store.Pilots(), store.Races())

	older, err := catalog.CreateRace(ctx, race.Race{
		Name: "GP Interlagos",
		Date: time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create race: %v", err)
	}
	newer, err := catalog.CreateRace(ctx, race.Race{
		Name: "GP Goiânia",
		Date: time.Date(2026, time.April, 12, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create race: %v", err)
	}

	races, err := catalog.ListRaces(ctx)
	if err != nil {
		t.Fatalf("list races: %v", err)
	}
	if len(races) != 2 {
		t.Fatalf("races=%d want=2", len(races))
	}
	if races[0].ID != newer.ID || races[1].ID != older.ID {
		t.Fatalf("expected newest race first, got %+v", races)
	}
}

func TestCatalogService_DeleteRaceRemovesVotes(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	catalog := NewCatalogService(store.Pilots(), store.Races())
	voting := NewVotingService(store.Pilots(), store.Races(), store.Votes(), store.Leaderboard())

	p := mustCreatePilot(t, catalog, "Gabriel Fortes", "Escuderia Horizonte")
	r := mustCreateRace(t, catalog, "GP Interlagos")
	if _, err := voting.CastVote(ctx, r.ID, p.ID, "203.0.113.1"); err != nil {
		t.Fatalf("cast vote: %v", err)
	}

	if err := catalog.DeleteRace(ctx, r.ID); err != nil {
		t.Fatalf("delete race: %v", err)
	}

	count, err := store.Votes().CountByRace(ctx, r.ID)
	if err != nil {
		t.Fatalf("count votes: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected votes removed with race, got %d", count)
	}
}
