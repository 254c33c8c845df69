// Package querylog provides the persistence adapters for the query history.
package querylog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/querylog"
)

// MemoryRepository is an in-memory querylog.Repository used for tests/dev.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []querylog.Entry
}

// NewMemoryRepository constructs a repository backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Save implements querylog.Repository.
func (r *MemoryRepository) Save(_ context.Context, entry querylog.Entry) (querylog.Entry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return entry, nil
}

// FindByType implements querylog.Repository. Entries come back newest first.
func (r *MemoryRepository) FindByType(_ context.Context, requestType string) ([]querylog.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]querylog.Entry, 0)
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].RequestType == requestType {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

// Destinations implements querylog.Repository, returning distinct
// destinations in first-seen order.
func (r *MemoryRepository) Destinations(_ context.Context, requestType string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, entry := range r.entries {
		if entry.RequestType != requestType {
			continue
		}
		if _, ok := seen[entry.Destination]; ok {
			continue
		}
		seen[entry.Destination] = struct{}{}
		out = append(out, entry.Destination)
	}
	return out, nil
}

var _ querylog.Repository = (*MemoryRepository)(nil)
