package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
)

func snapshot(name, country string, temp float64) models.CitySnapshot {
	return models.CitySnapshot{
		ID:       models.CityID(name, country),
		Unit:     models.UnitMetric,
		Location: models.Location{Name: name, Country: country},
		Current:  models.CurrentConditions{Temperature: temp, Descriptions: []string{"Clear"}},
	}
}

func TestRegistry_AddIfAbsent(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.Add(snapshot("Paris", "France", 20)))
	assert.False(t, r.Add(snapshot("Paris", "France", 25)))
	assert.Equal(t, 1, r.Len())

	got, ok := r.Get("paris-france")
	require.True(t, ok)
	assert.Equal(t, 20.0, got.Current.Temperature, "the first entry wins")
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry()
	r.Add(snapshot("Paris", "France", 20))
	r.Add(snapshot("London", "United Kingdom", 10))
	r.Add(snapshot("Lyon", "France", 23))

	assert.True(t, r.Remove("london-united-kingdom"))
	assert.False(t, r.Remove("london-united-kingdom"))
	assert.False(t, r.Contains("london-united-kingdom"))

	var ids []string
	for _, s := range r.All() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"paris-france", "lyon-france"}, ids)
}

func TestRegistry_GroupByCountry(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.GroupByCountry())

	r.Add(snapshot("London", "United Kingdom", 10))
	r.Add(snapshot("Paris", "France", 20))
	r.Add(snapshot("Manchester", "United Kingdom", 9))
	r.Add(snapshot("Lyon", "France", 23))

	groups := r.GroupByCountry()
	require.Len(t, groups, 2)

	assert.Equal(t, "United Kingdom", groups[0].Country)
	require.Len(t, groups[0].Cities, 2)
	assert.Equal(t, "London", groups[0].Cities[0].Location.Name)
	assert.Equal(t, "Manchester", groups[0].Cities[1].Location.Name)

	assert.Equal(t, "France", groups[1].Country)
	require.Len(t, groups[1].Cities, 2)
	assert.Equal(t, "Paris", groups[1].Cities[0].Location.Name)
	assert.Equal(t, "Lyon", groups[1].Cities[1].Location.Name)

	total := 0
	for _, g := range groups {
		total += len(g.Cities)
	}
	assert.Equal(t, r.Len(), total)
}

func TestRegistry_ReplaceAll(t *testing.T) {
	r := NewRegistry()
	r.Add(snapshot("Paris", "France", 20))
	r.Add(snapshot("London", "United Kingdom", 10))

	require.NoError(t, r.ReplaceAll([]models.CitySnapshot{
		snapshot("Paris", "France", 68),
		snapshot("London", "United Kingdom", 50),
	}))
	got, ok := r.Get("paris-france")
	require.True(t, ok)
	assert.Equal(t, 68.0, got.Current.Temperature)

	err := r.ReplaceAll([]models.CitySnapshot{
		snapshot("Paris", "France", 1),
		snapshot("Paris", "France", 2),
	})
	require.Error(t, err)
	assert.Equal(t, 2, r.Len(), "a rejected replacement leaves the content alone")
	got, _ = r.Get("paris-france")
	assert.Equal(t, 68.0, got.Current.Temperature)
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	r := NewRegistry()
	s := snapshot("Paris", "France", 20)
	r.Add(s)

	s.Current.Descriptions[0] = "mutated"
	got, _ := r.Get("paris-france")
	assert.Equal(t, "Clear", got.Current.Descriptions[0])

	got.Current.Descriptions[0] = "mutated again"
	again, _ := r.Get("paris-france")
	assert.Equal(t, "Clear", again.Current.Descriptions[0])
}
