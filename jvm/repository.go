package jvm

import (
	"fmt"
	"sort"
)

// Repository resolves dotted class names to class metadata. Implementations
// are read-mostly services; Lookup must return a *MissingClassError when the
// class cannot be found.
type Repository interface {
	Lookup(name string) (*Class, error)
}

// MissingClassError is the lookup failure for a class that is not present in
// the repository.
type MissingClassError struct {
	Name string
}

func (e *MissingClassError) Error() string {
	return fmt.Sprintf("missing class: %s", e.Name)
}

// MemoryRepository is an in-memory Repository populated from parsed class
// dumps.
type MemoryRepository struct {
	classes map[string]*Class
}

// NewMemoryRepository creates a repository holding the given classes.
func NewMemoryRepository(classes ...*Class) *MemoryRepository {
	r := &MemoryRepository{classes: make(map[string]*Class)}
	for _, c := range classes {
		r.Add(c)
	}
	return r
}

// Add registers a class, replacing any previous class of the same name.
func (r *MemoryRepository) Add(c *Class) {
	r.classes[c.Name] = c
}

// Lookup implements Repository.
func (r *MemoryRepository) Lookup(name string) (*Class, error) {
	if c, ok := r.classes[name]; ok {
		return c, nil
	}
	return nil, &MissingClassError{Name: name}
}

// Classes returns all registered classes sorted by name.
func (r *MemoryRepository) Classes() []*Class {
	out := make([]*Class, 0, len(r.classes))
	for _, c := range r.classes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
