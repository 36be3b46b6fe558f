package memory

import (
	"context"

	"github.com/racedaybr/pitvote/internal/domain/admin"
)

type AdminRepository struct {
	store *Store
}

func (r *AdminRepository) GetByUsername(_ context.Context, username string) (admin.Credential, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cred, ok := r.store.admins[username]
	if !ok {
		return admin.Credential{}, false, nil
	}

	return cred, true, nil
}

// PutAdmin stores a credential, replacing any existing row for the username.
func (s *Store) PutAdmin(cred admin.Credential) admin.Credential {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.admins[cred.Username]; ok {
		cred.ID = existing.ID
	} else {
		s.nextAdminID++
		cred.ID = s.nextAdminID
	}
	s.admins[cred.Username] = cred

	return cred
}

// RemoveAdmin drops the credential for the username, if present.
func (s *Store) RemoveAdmin(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.admins, username)
}
