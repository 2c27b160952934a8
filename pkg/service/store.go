package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
)

// SceneDoc is a stored scene: the serialized scene plus bookkeeping.
// Data holds the scene JSON exactly as uploaded; Hash is its SHA-256,
// used as the artifact cache key.
type SceneDoc struct {
	ID        string    `bson:"_id" json:"id"`
	Data      []byte    `bson:"data" json:"-"`
	Hash      string    `bson:"hash" json:"hash"`
	Actors    int       `bson:"actors" json:"actors"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Store persists scene documents. Implementations must be safe for
// concurrent use.
type Store interface {
	// Put stores or replaces a scene document.
	Put(ctx context.Context, doc SceneDoc) error

	// Get retrieves a scene document by ID. Missing scenes fail with
	// SCENE_NOT_FOUND.
	Get(ctx context.Context, id string) (SceneDoc, error)

	// Delete removes a scene document. Missing scenes fail with
	// SCENE_NOT_FOUND.
	Delete(ctx context.Context, id string) error

	// List returns all scene documents without their Data payloads,
	// sorted by ID.
	List(ctx context.Context) ([]SceneDoc, error)

	// Close releases store resources.
	Close(ctx context.Context) error
}

// MemoryStore is a process-local store for tests and single-instance
// deployments.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]SceneDoc
}

// NewMemoryStore creates an in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]SceneDoc)}
}

// Put stores or replaces a scene document.
func (s *MemoryStore) Put(ctx context.Context, doc SceneDoc) error {
	s.mu.Lock()
	s.docs[doc.ID] = doc
	s.mu.Unlock()
	return nil
}

// Get retrieves a scene document by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (SceneDoc, error) {
	s.mu.RLock()
	doc, ok := s.docs[id]
	s.mu.RUnlock()
	if !ok {
		return SceneDoc{}, errors.New(errors.ErrCodeSceneNotFound, "scene %q not found", id)
	}
	return doc, nil
}

// Delete removes a scene document.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return errors.New(errors.ErrCodeSceneNotFound, "scene %q not found", id)
	}
	delete(s.docs, id)
	return nil
}

// List returns all scene documents without their Data payloads.
func (s *MemoryStore) List(ctx context.Context) ([]SceneDoc, error) {
	s.mu.RLock()
	out := make([]SceneDoc, 0, len(s.docs))
	for _, doc := range s.docs {
		doc.Data = nil
		out = append(out, doc)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
