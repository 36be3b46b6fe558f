package cache

import (
	"context"
	"strconv"

	"github.com/racedaybr/pitvote/internal/domain/pilot"
	basecache "github.com/racedaybr/pitvote/internal/platform/cache"
)

const (
	pilotListKey     = "pilot:list"
	pilotByIDPrefix  = "pilot:id:"
	pilotCachePrefix = "pilot:"
)

type cachedPilotByID struct {
	value  pilot.Pilot
	exists bool
}

// PilotRepository caches reads of the pilot catalog. Writes go straight
// through and drop every pilot key, so admin edits are visible on the next
// read.
type PilotRepository struct {
	next  pilot.Repository
	cache *basecache.Store
}

func NewPilotRepository(next pilot.Repository, cache *basecache.Store) *PilotRepository {
	return &PilotRepository{next: next, cache: cache}
}

func (r *PilotRepository) List(ctx context.Context) ([]pilot.Pilot, error) {
	v, err := r.cache.GetOrLoad(ctx, pilotListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]pilot.Pilot(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]pilot.Pilot)
	return append([]pilot.Pilot(nil), items...), nil
}

func (r *PilotRepository) GetByID(ctx context.Context, pilotID int64) (pilot.Pilot, bool, error) {
	key := pilotByIDPrefix + strconv.FormatInt(pilotID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, pilotID)
		if err != nil {
			return nil, err
		}
		return cachedPilotByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return pilot.Pilot{}, false, err
	}

	cached, _ := v.(cachedPilotByID)
	return cached.value, cached.exists, nil
}

func (r *PilotRepository) Create(ctx context.Context, p pilot.Pilot) (pilot.Pilot, error) {
	created, err := r.next.Create(ctx, p)
	if err != nil {
		return pilot.Pilot{}, err
	}
	r.cache.DeletePrefix(ctx, pilotCachePrefix)

	return created, nil
}

func (r *PilotRepository) Update(ctx context.Context, p pilot.Pilot) (bool, error) {
	updated, err := r.next.Update(ctx, p)
	if err != nil {
		return false, err
	}
	if updated {
		r.cache.DeletePrefix(ctx, pilotCachePrefix)
	}

	return updated, nil
}

func (r *PilotRepository) Delete(ctx context.Context, pilotID int64) (bool, error) {
	deleted, err := r.next.Delete(ctx, pilotID)
	if err != nil {
		return false, err
	}
	if deleted {
		r.cache.DeletePrefix(ctx, pilotCachePrefix)
	}

	return deleted, nil
}
