package usecase

import (
	"context"
	"fmt"

	"github.com/racedaybr/pitvote/internal/domain/pilot"
	"github.com/racedaybr/pitvote/internal/domain/race"
)

// CatalogService owns admin-side CRUD over pilots and races.
type CatalogService struct {
	pilotRepo pilot.Repository
	raceRepo  race.Repository
}

func NewCatalogService(pilotRepo pilot.Repository, raceRepo race.Repository) *CatalogService {
	return &CatalogService{
		pilotRepo: pilotRepo,
		raceRepo:  raceRepo,
	}
}

func (s *CatalogService) ListPilots(ctx context.Context) ([]pilot.Pilot, error) {
	pilots, err := s.pilotRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pilots: %w", err)
	}

	return pilots, nil
}

func (s *CatalogService) GetPilot(ctx context.Context, pilotID int64) (pilot.Pilot, error) {
	if pilotID <= 0 {
		return pilot.Pilot{}, fmt.Errorf("%w: pilot id must be positive", ErrInvalidInput)
	}

	p, exists, err := s.pilotRepo.GetByID(ctx, pilotID)
	if err != nil {
		return pilot.Pilot{}, fmt.Errorf("get pilot: %w", err)
	}
	if !exists {
		return pilot.Pilot{}, fmt.Errorf("%w: pilot=%d", ErrNotFound, pilotID)
	}

	return p, nil
}

func (s *CatalogService) CreatePilot(ctx context.Context, p pilot.Pilot) (pilot.Pilot, error) {
	if err := p.Validate(); err != nil {
		return pilot.Pilot{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	p.ID = 0
	created, err := s.pilotRepo.Create(ctx, p)
	if err != nil {
		return pilot.Pilot{}, fmt.Errorf("create pilot: %w", err)
	}

	return created, nil
}

func (s *CatalogService) UpdatePilot(ctx context.Context, p pilot.Pilot) (pilot.Pilot, error) {
	if p.ID <= 0 {
		return pilot.Pilot{}, fmt.Errorf("%w: pilot id must be positive", ErrInvalidInput)
	}
	if err := p.Validate(); err != nil {
		return pilot.Pilot{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.pilotRepo.Update(ctx, p)
	if err != nil {
		return pilot.Pilot{}, fmt.Errorf("update pilot: %w", err)
	}
	if !updated {
		return pilot.Pilot{}, fmt.Errorf("%w: pilot=%d", ErrNotFound, p.ID)
	}

	return p, nil
}

// DeletePilot removes the pilot and, through the repository, its votes and
// leaderboard row.
func (s *CatalogService) DeletePilot(ctx context.Context, pilotID int64) error {
	if pilotID <= 0 {
		return fmt.Errorf("%w: pilot id must be positive", ErrInvalidInput)
	}

	deleted, err := s.pilotRepo.Delete(ctx, pilotID)
	if err != nil {
		return fmt.Errorf("delete pilot: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: pilot=%d", ErrNotFound, pilotID)
	}

	return nil
}

func (s *CatalogService) ListRaces(ctx context.Context) ([]race.Race, error) {
	races, err := s.raceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list races: %w", err)
	}

	return races, nil
}

func (s *CatalogService) GetRace(ctx context.Context, raceID int64) (race.Race, error) {
	if raceID <= 0 {
		return race.Race{}, fmt.Errorf("%w: race id must be positive", ErrInvalidInput)
	}

	r, exists, err := s.raceRepo.GetByID(ctx, raceID)
	if err != nil {
		return race.Race{}, fmt.Errorf("get race: %w", err)
	}
	if !exists {
		return race.Race{}, fmt.Errorf("%w: race=%d", ErrNotFound, raceID)
	}

	return r, nil
}

// CreateRace stores a new race. Races always start open regardless of the
// submitted closed flag.
func (s *CatalogService) CreateRace(ctx context.Context, r race.Race) (race.Race, error) {
	if err := r.Validate(); err != nil {
		return race.Race{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	r.ID = 0
	r.Closed = false
	created, err := s.raceRepo.Create(ctx, r)
	if err != nil {
		return race.Race{}, fmt.Errorf("create race: %w", err)
	}

	return created, nil
}

// UpdateRace edits race name and date. The closed flag is owned by the close
// operation and is never touched here.
func (s *CatalogService) UpdateRace(ctx context.Context, r race.Race) (race.Race, error) {
	if r.ID <= 0 {
		return race.Race{}, fmt.Errorf("%w: race id must be positive", ErrInvalidInput)
	}
	if err := r.Validate(); err != nil {
		return race.Race{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.raceRepo.Update(ctx, r)
	if err != nil {
		return race.Race{}, fmt.Errorf("update race: %w", err)
	}
	if !updated {
		return race.Race{}, fmt.Errorf("%w: race=%d", ErrNotFound, r.ID)
	}

	// Re-read for the stored closed flag; the update statement never
	// touches it, so a concurrent close survives this edit.
	stored, exists, err := s.raceRepo.GetByID(ctx, r.ID)
	if err != nil {
		return race.Race{}, fmt.Errorf("get race: %w", err)
	}
	if !exists {
		return race.Race{}, fmt.Errorf("%w: race=%d", ErrNotFound, r.ID)
	}

	return stored, nil
}

// DeleteRace removes the race together with its votes.
func (s *CatalogService) DeleteRace(ctx context.Context, raceID int64) error {
	if raceID <= 0 {
		return fmt.Errorf("%w: race id must be positive", ErrInvalidInput)
	}

	deleted, err := s.raceRepo.Delete(ctx, raceID)
	if err != nil {
		return fmt.Errorf("delete race: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: race=%d", ErrNotFound, raceID)
	}

	return nil
}
