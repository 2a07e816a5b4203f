package dashboard

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"weather-dashboard/internal/models"
)

type cityFixture struct {
	name     string
	country  string
	celsius  float64
	windKmh  float64
	forecast *models.Location // overrides the forecast's location when set
}

// MockRepository is an in-memory weather service. Temperatures are stored in
// Celsius and converted when imperial units are requested.
type MockRepository struct {
	mu            sync.Mutex
	cities        map[string]cityFixture
	failCurrent   map[string]error
	failForecast  map[string]error
	currentGate   chan struct{}
	forecastGates map[string]chan struct{}
	currentCalls  []string
	forecastCalls []string
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		cities: map[string]cityFixture{
			"paris":  {name: "Paris", country: "France", celsius: 20, windKmh: 11},
			"lyon":   {name: "Lyon", country: "France", celsius: 23, windKmh: 7},
			"london": {name: "London", country: "United Kingdom", celsius: 10, windKmh: 19},
		},
		failCurrent:   map[string]error{},
		failForecast:  map[string]error{},
		forecastGates: map[string]chan struct{}{},
	}
}

func cityKey(query string) string {
	return strings.ToLower(strings.TrimSpace(strings.SplitN(query, ",", 2)[0]))
}

func convert(celsius float64, unit models.Unit) float64 {
	if unit == models.UnitImperial {
		return math.Round(celsius*9/5 + 32)
	}
	return celsius
}

func convertSpeed(kmh float64, unit models.Unit) float64 {
	if unit == models.UnitImperial {
		return math.Round(kmh / 1.609)
	}
	return kmh
}

func (m *MockRepository) Name() string {
	return "mock"
}

func (m *MockRepository) FetchCurrent(ctx context.Context, query string, unit models.Unit) (models.CitySnapshot, error) {
	key := cityKey(query)

	m.mu.Lock()
	m.currentCalls = append(m.currentCalls, key)
	gate := m.currentGate
	fixture, ok := m.cities[key]
	failure := m.failCurrent[key]
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return models.CitySnapshot{}, ctx.Err()
		}
	}

	if failure != nil {
		return models.CitySnapshot{}, failure
	}
	if !ok {
		return models.CitySnapshot{}, &models.NotFoundError{Query: query, Message: "City not found"}
	}

	return models.CitySnapshot{
		ID:   models.CityID(fixture.name, fixture.country),
		Unit: unit,
		Location: models.Location{
			Name:    fixture.name,
			Country: fixture.country,
		},
		Current: models.CurrentConditions{
			Temperature:  convert(fixture.celsius, unit),
			FeelsLike:    convert(fixture.celsius+1, unit),
			WindSpeed:    convertSpeed(fixture.windKmh, unit),
			Descriptions: []string{"Sunny"},
		},
	}, nil
}

func (m *MockRepository) FetchForecast(ctx context.Context, query string, unit models.Unit, days int) (models.ForecastBundle, error) {
	key := cityKey(query)

	m.mu.Lock()
	m.forecastCalls = append(m.forecastCalls, key)
	gate := m.forecastGates[key]
	fixture, ok := m.cities[key]
	failure := m.failForecast[key]
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return models.ForecastBundle{}, ctx.Err()
		}
	}

	if failure != nil {
		return models.ForecastBundle{}, failure
	}
	if !ok {
		return models.ForecastBundle{}, &models.NotFoundError{Query: query, Message: "City not found"}
	}

	loc := models.Location{Name: fixture.name, Country: fixture.country}
	if fixture.forecast != nil {
		loc = *fixture.forecast
	}

	bundle := models.ForecastBundle{
		CityID:   models.CityID(loc.Name, loc.Country),
		Unit:     unit,
		Location: loc,
		Days:     make(map[string]models.ForecastDay, days),
	}
	start := time.Date(2025, time.July, 26, 0, 0, 0, 0, time.UTC)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		bundle.Days[date] = models.ForecastDay{
			Date:    date,
			AvgTemp: convert(fixture.celsius, unit),
			MaxTemp: convert(fixture.celsius+5, unit),
			MinTemp: convert(fixture.celsius-5, unit),
			Hourly:  []models.HourlySample{},
		}
	}
	return bundle, nil
}

func (m *MockRepository) FetchHistorical(ctx context.Context, query string, unit models.Unit, date time.Time) (models.HistoricalRecord, error) {
	key := cityKey(query)

	m.mu.Lock()
	fixture, ok := m.cities[key]
	failure := m.failCurrent[key]
	m.mu.Unlock()

	if failure != nil {
		return models.HistoricalRecord{}, failure
	}
	if !ok {
		return models.HistoricalRecord{}, &models.NotFoundError{Query: query, Message: "City not found"}
	}

	d := date.Format(models.HistoricalDateLayout)
	return models.HistoricalRecord{
		Unit:     unit,
		Location: models.Location{Name: fixture.name, Country: fixture.country},
		Days: map[string]models.HistoricalDay{
			d: {Date: d, AvgTemp: convert(fixture.celsius, unit)},
		},
	}, nil
}

func (m *MockRepository) setForecastGate(key string, gate chan struct{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forecastGates[key] = gate
}

func (m *MockRepository) setCurrentGate(gate chan struct{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentGate = gate
}

func (m *MockRepository) setCurrentFailure(key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failCurrent[key] = err
}

func (m *MockRepository) setForecastFailure(key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failForecast[key] = err
}

func (m *MockRepository) forecastCallsFor(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.forecastCalls {
		if c == key {
			n++
		}
	}
	return n
}

func (m *MockRepository) currentCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.currentCalls)
}
