package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/pkg/logger"
)

const defaultForecastDays = 5

type ForecastStatus string

const (
	ForecastNone        ForecastStatus = "none"
	ForecastPending     ForecastStatus = "pending"
	ForecastReady       ForecastStatus = "ready"
	ForecastUnavailable ForecastStatus = "unavailable"
)

type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice is a transient message for the user.
type Notice struct {
	Level       NoticeLevel `json:"level" example:"info"`
	Title       string      `json:"title" example:"City already added"`
	Description string      `json:"description,omitempty" example:"Weather for Paris, France is already displayed"`
}

// Dashboard owns one user's registry, selection, forecast and unit. All
// state changes go through its command methods. The lock is never held
// across a network call.
type Dashboard struct {
	repo         repositories.WeatherRepository
	l            *logger.Logger
	forecastDays int

	mu             sync.Mutex
	registry       *Registry
	unit           models.Unit
	selectedID     string
	forecast       *models.ForecastBundle
	forecastStatus ForecastStatus
	// generation changes on every selection change; forecast results
	// carrying an older generation are dropped.
	generation uint64
	inFlight   int
	adding     int
	toggling   bool
	notices    []Notice
}

type Option func(*Dashboard)

func WithForecastDays(days int) Option {
	return func(d *Dashboard) {
		if days > 0 {
			d.forecastDays = days
		}
	}
}

func WithUnit(u models.Unit) Option {
	return func(d *Dashboard) {
		d.unit = u
	}
}

func New(repo repositories.WeatherRepository, l *logger.Logger, opts ...Option) *Dashboard {
	d := &Dashboard{
		repo:           repo,
		l:              l,
		forecastDays:   defaultForecastDays,
		registry:       NewRegistry(),
		unit:           models.UnitMetric,
		forecastStatus: ForecastNone,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dashboard) Unit() models.Unit {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.unit
}

// Selected returns the currently selected registry entry, if any.
func (d *Dashboard) Selected() (models.CitySnapshot, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.selectedID == "" {
		return models.CitySnapshot{}, false
	}
	return d.registry.Get(d.selectedID)
}

// Select makes id the selected city and fetches its forecast. Unknown ids
// leave the state untouched.
func (d *Dashboard) Select(ctx context.Context, id string) error {
	d.mu.Lock()
	if d.toggling {
		d.mu.Unlock()
		return models.ErrBusy
	}
	req, ok := d.beginSelectLocked(id)
	d.mu.Unlock()

	if !ok {
		d.l.Warning("select ignored, city is not registered", map[string]any{"city_id": id})
		return nil
	}

	d.fetchForecast(ctx, req)
	return nil
}

type forecastRequest struct {
	generation uint64
	city       models.CitySnapshot
	unit       models.Unit
}

func (d *Dashboard) beginSelectLocked(id string) (forecastRequest, bool) {
	city, ok := d.registry.Get(id)
	if !ok {
		return forecastRequest{}, false
	}
	d.generation++
	d.selectedID = id
	d.forecast = nil
	d.forecastStatus = ForecastPending
	d.inFlight++
	return forecastRequest{generation: d.generation, city: city, unit: d.unit}, true
}

// fetchForecast applies the result only if the selection it was issued for
// is still current when it completes.
func (d *Dashboard) fetchForecast(ctx context.Context, req forecastRequest) {
	bundle, err := d.repo.FetchForecast(ctx, req.city.Location.Name, req.unit, d.forecastDays)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.inFlight--

	if req.generation != d.generation || req.city.ID != d.selectedID {
		d.l.Debug("discarding stale forecast", map[string]any{
			"city_id":  req.city.ID,
			"selected": d.selectedID,
		})
		return
	}

	if err != nil {
		d.forecastStatus = ForecastUnavailable
		d.l.Warning("forecast data not available", map[string]any{
			"city_id": req.city.ID,
			"err":     err,
		})
		return
	}

	if !bundle.Location.SameCity(req.city.Location) {
		d.forecastStatus = ForecastUnavailable
		d.l.Warning("forecast location does not match the selected city", map[string]any{
			"city_id":          req.city.ID,
			"forecast_name":    bundle.Location.Name,
			"forecast_country": bundle.Location.Country,
		})
		return
	}

	bundle.CityID = req.city.ID
	if dates := bundle.SortedDates(); len(dates) > 0 {
		d.l.Debug("forecast applied", map[string]any{
			"city_id": req.city.ID,
			"from":    dates[0],
			"to":      dates[len(dates)-1],
		})
	}
	d.forecast = &bundle
	d.forecastStatus = ForecastReady
}

// AddCity fetches current weather for name (optionally narrowed by a country
// code), registers it unless already present, and selects it. The bool
// reports whether a new entry was added.
func (d *Dashboard) AddCity(ctx context.Context, name, country string) (models.CitySnapshot, bool, error) {
	name = strings.TrimSpace(name)
	country = strings.TrimSpace(country)

	if name == "" {
		err := &models.ValidationError{Field: "name", Message: "Please enter a city name"}
		d.mu.Lock()
		d.pushNoticeLocked(NoticeError, err.Message, "")
		d.mu.Unlock()
		return models.CitySnapshot{}, false, err
	}

	query := name
	if country != "" {
		query = name + "," + country
	}

	d.mu.Lock()
	if d.toggling {
		d.mu.Unlock()
		return models.CitySnapshot{}, false, models.ErrBusy
	}
	unit := d.unit
	d.adding++
	d.inFlight++
	d.mu.Unlock()

	snap, err := d.repo.FetchCurrent(ctx, query, unit)

	d.mu.Lock()
	d.adding--
	d.inFlight--

	if err != nil {
		d.pushNoticeLocked(NoticeError, "Error fetching weather data", models.UserMessage(err, "Please try again"))
		d.mu.Unlock()
		d.l.Warning("failed to add city", map[string]any{"query": query, "err": err})
		return models.CitySnapshot{}, false, err
	}

	added := d.registry.Add(snap)
	if !added {
		d.pushNoticeLocked(NoticeInfo, "City already added",
			fmt.Sprintf("Weather for %s, %s is already displayed", snap.Location.Name, snap.Location.Country))
		snap, _ = d.registry.Get(snap.ID)
	}
	req, _ := d.beginSelectLocked(snap.ID)
	d.mu.Unlock()

	if added {
		d.l.Info("city added", map[string]any{"city_id": snap.ID, "unit": unit})
	}

	d.fetchForecast(ctx, req)
	return snap, added, nil
}

// RemoveCity drops id from the registry. Removing the selected city clears
// the selection and its forecast.
func (d *Dashboard) RemoveCity(id string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.toggling {
		return false, models.ErrBusy
	}

	removed := d.registry.Remove(id)
	if removed && d.selectedID == id {
		d.generation++
		d.selectedID = ""
		d.forecast = nil
		d.forecastStatus = ForecastNone
	}
	return removed, nil
}

// ToggleUnit switches between metric and imperial. Every registered city is
// re-fetched in the new unit; nothing changes unless all of them succeed.
func (d *Dashboard) ToggleUnit(ctx context.Context) error {
	d.mu.Lock()
	if d.toggling || d.adding > 0 {
		d.mu.Unlock()
		return models.ErrBusy
	}
	d.toggling = true
	d.inFlight++
	next := d.unit.Toggle()
	entries := d.registry.All()
	d.mu.Unlock()

	updated, err := d.refetchAll(ctx, entries, next)

	d.mu.Lock()
	d.toggling = false
	d.inFlight--

	if err == nil {
		err = d.registry.ReplaceAll(updated)
	}
	if err != nil {
		d.pushNoticeLocked(NoticeError, "Error updating weather data", "Failed to update with new temperature unit")
		d.mu.Unlock()
		d.l.Warning("unit change rolled back", map[string]any{"unit": next, "err": err})
		return err
	}

	d.unit = next
	var (
		req      forecastRequest
		reselect bool
	)
	if d.selectedID != "" {
		req, reselect = d.beginSelectLocked(d.selectedID)
	}
	d.mu.Unlock()

	d.l.Info("unit changed", map[string]any{"unit": next, "cities": len(updated)})

	if reselect {
		d.fetchForecast(ctx, req)
	}
	return nil
}

func (d *Dashboard) refetchAll(ctx context.Context, entries []models.CitySnapshot, unit models.Unit) ([]models.CitySnapshot, error) {
	updated := make([]models.CitySnapshot, len(entries))
	failures := make([]error, len(entries))

	var g errgroup.Group
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			snap, err := d.repo.FetchCurrent(ctx, entry.Location.Name, unit)
			if err != nil {
				failures[i] = err
				return err
			}
			if snap.ID != entry.ID {
				d.l.Debug("refetched city resolved to a different id", map[string]any{
					"city_id":  entry.ID,
					"resolved": snap.ID,
				})
			}
			snap.ID = entry.ID
			updated[i] = snap
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		partial := &models.PartialUpdateError{Unit: unit, Failed: make(map[string]error)}
		for i, ferr := range failures {
			if ferr != nil {
				partial.Failed[entries[i].ID] = ferr
			}
		}
		return nil, errors.WithStack(partial)
	}
	return updated, nil
}

func (d *Dashboard) pushNoticeLocked(level NoticeLevel, title, description string) {
	d.notices = append(d.notices, Notice{Level: level, Title: title, Description: description})
}

// DrainNotices returns pending notices and forgets them.
func (d *Dashboard) DrainNotices() []Notice {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := d.notices
	d.notices = nil
	return out
}
