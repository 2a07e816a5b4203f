package dashboard

import (
	"github.com/pkg/errors"

	"weather-dashboard/internal/models"
)

// CountryGroup is one country's slice of the registry, in insertion order.
type CountryGroup struct {
	Country string
	Cities  []models.CitySnapshot
}

// Registry is an insertion-ordered set of city snapshots keyed by ID.
// Entries are never mutated in place; callers get copies.
type Registry struct {
	order []string
	byID  map[string]models.CitySnapshot
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]models.CitySnapshot)}
}

// Add appends s unless its ID is already present. It reports whether s was added.
func (r *Registry) Add(s models.CitySnapshot) bool {
	if _, ok := r.byID[s.ID]; ok {
		return false
	}
	r.order = append(r.order, s.ID)
	r.byID[s.ID] = s.Clone()
	return true
}

func (r *Registry) Remove(id string) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *Registry) Get(id string) (models.CitySnapshot, bool) {
	s, ok := r.byID[id]
	if !ok {
		return models.CitySnapshot{}, false
	}
	return s.Clone(), true
}

func (r *Registry) Contains(id string) bool {
	_, ok := r.byID[id]
	return ok
}

func (r *Registry) Len() int {
	return len(r.order)
}

func (r *Registry) All() []models.CitySnapshot {
	out := make([]models.CitySnapshot, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out
}

// GroupByCountry groups snapshots by Location.Country. Groups are ordered by
// the first appearance of their country.
func (r *Registry) GroupByCountry() []CountryGroup {
	var groups []CountryGroup
	index := make(map[string]int)
	for _, id := range r.order {
		s := r.byID[id]
		i, ok := index[s.Location.Country]
		if !ok {
			i = len(groups)
			index[s.Location.Country] = i
			groups = append(groups, CountryGroup{Country: s.Location.Country})
		}
		groups[i].Cities = append(groups[i].Cities, s.Clone())
	}
	return groups
}

// ReplaceAll swaps the whole content for snapshots, keeping their order.
// Nothing changes if snapshots contain a duplicate ID.
func (r *Registry) ReplaceAll(snapshots []models.CitySnapshot) error {
	order := make([]string, 0, len(snapshots))
	byID := make(map[string]models.CitySnapshot, len(snapshots))
	for _, s := range snapshots {
		if _, dup := byID[s.ID]; dup {
			return errors.Errorf("duplicate city id %q", s.ID)
		}
		order = append(order, s.ID)
		byID[s.ID] = s.Clone()
	}
	r.order = order
	r.byID = byID
	return nil
}
