package template

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-roller/internal/entities/special"
	"github.com/KirkDiggler/rpg-roller/internal/errors"
	"github.com/KirkDiggler/rpg-roller/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage.
// It is used when no Redis address is configured.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Record
}

// NewInMemory creates a new in-memory repository. A nil clock uses real time.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*Record),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a template unless one with the same name exists
func (r *InMemoryRepository) Create(_ context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}

	record, err := NewRecord(input.Template, r.clock.Now())
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[record.Name]; exists {
		return nil, errors.AlreadyExistsf("template %s already exists", record.Name).
			WithMeta(errors.MetaName, record.Name)
	}
	r.store[record.Name] = record

	copied := *record
	return &CreateOutput{Record: &copied}, nil
}

// Get retrieves a template by name
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	r.mu.RLock()
	record, exists := r.store[input.Name]
	r.mu.RUnlock()
	if !exists {
		return nil, errors.NotFoundf("template %s not found", input.Name).
			WithMeta(errors.MetaName, input.Name)
	}

	t, err := record.Template()
	if err != nil {
		return nil, err
	}

	// Return a copy to prevent external modification
	copied := *record
	return &GetOutput{Template: t, Record: &copied}, nil
}

// Delete removes a template
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Name]; !exists {
		return nil, errors.NotFoundf("template %s not found", input.Name).
			WithMeta(errors.MetaName, input.Name)
	}
	delete(r.store, input.Name)

	return &DeleteOutput{}, nil
}

// List returns every stored template sorted by name
func (r *InMemoryRepository) List(_ context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	templates := make([]special.Special, 0, len(r.store))
	for _, record := range r.store {
		t, err := record.Template()
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name() < templates[j].Name()
	})

	return &ListOutput{Templates: templates}, nil
}
