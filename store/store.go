// Package store holds the in-memory copy of the remote record collection.
// It is a cache, not the source of truth: every change lands as a full
// re-fetch and atomic replacement.
package store

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"clientregistro/models"
	"clientregistro/monitoring"
)

// Lister is the slice of the remote service the store depends on.
type Lister interface {
	List(ctx context.Context) ([]models.Client, error)
}

type Store struct {
	mu      sync.RWMutex
	clients []models.Client
	remote  Lister
	log     *logrus.Entry
}

func New(remote Lister) *Store {
	return &Store{
		remote: remote,
		log:    logrus.WithField("component", "store"),
	}
}

// Refresh replaces the local state with the remote collection. On any
// failure, malformed responses included, the state becomes empty so a
// partial or stale list is never shown.
func (s *Store) Refresh(ctx context.Context) error {
	clients, err := s.remote.List(ctx)
	if err != nil {
		s.mu.Lock()
		s.clients = nil
		s.mu.Unlock()
		monitoring.StoreRefreshes.WithLabelValues("error").Inc()
		s.log.WithError(err).Warn("refresh failed, list cleared")
		return err
	}

	s.mu.Lock()
	s.clients = clients
	s.mu.Unlock()
	monitoring.StoreRefreshes.WithLabelValues("ok").Inc()
	s.log.WithField("count", len(clients)).Debug("list refreshed")
	return nil
}

// Snapshot returns a copy of the current state in fetch order.
func (s *Store) Snapshot() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Find returns the record with the given identifier, if present.
func (s *Store) Find(id string) (models.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}
