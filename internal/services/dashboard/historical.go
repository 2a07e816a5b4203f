package dashboard

import (
	"context"
	"strings"
	"sync"
	"time"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/pkg/logger"
)

// HistoricalState is what the historical panel renders.
type HistoricalState struct {
	City    string                   `json:"city,omitempty" example:"London"`
	Date    string                   `json:"date,omitempty" example:"2015-01-21"`
	Loading bool                     `json:"loading"`
	Error   string                   `json:"error,omitempty"`
	Record  *models.HistoricalRecord `json:"record,omitempty"`
}

// HistoricalPanel fetches history for one city and date at a time. Its
// failures stay local and never reach the dashboard.
type HistoricalPanel struct {
	repo repositories.WeatherRepository
	l    *logger.Logger
	now  func() time.Time

	mu    sync.Mutex
	seq   uint64
	state HistoricalState
}

func NewHistoricalPanel(repo repositories.WeatherRepository, l *logger.Logger) *HistoricalPanel {
	return &HistoricalPanel{repo: repo, l: l, now: time.Now}
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidateHistoricalDate accepts dates from 2008-01-01 up to and including
// today.
func ValidateHistoricalDate(date, now time.Time) error {
	day := calendarDay(date)
	if day.Before(models.EarliestHistoricalDate) {
		return &models.ValidationError{Field: "date", Message: "Historical data is only available from 2008-01-01"}
	}
	if day.After(calendarDay(now)) {
		return &models.ValidationError{Field: "date", Message: "Date cannot be in the future"}
	}
	return nil
}

// ParseHistoricalDate parses a yyyy-MM-dd date and checks its bounds.
func ParseHistoricalDate(s string, now time.Time) (time.Time, error) {
	date, err := time.Parse(models.HistoricalDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, &models.ValidationError{Field: "date", Message: "Date must be formatted as YYYY-MM-DD"}
	}
	if err := ValidateHistoricalDate(date, now); err != nil {
		return time.Time{}, err
	}
	return date, nil
}

func (p *HistoricalPanel) Now() time.Time {
	return p.now()
}

// Fetch loads history for city on date. Only the latest request's outcome is
// kept when several overlap.
func (p *HistoricalPanel) Fetch(ctx context.Context, city string, unit models.Unit, date time.Time) (models.HistoricalRecord, error) {
	// The caller's string may alias a request buffer; state outlives it.
	city = strings.Clone(strings.TrimSpace(city))
	if city == "" {
		return models.HistoricalRecord{}, &models.ValidationError{Field: "city", Message: "Select a city first"}
	}
	if err := ValidateHistoricalDate(date, p.now()); err != nil {
		return models.HistoricalRecord{}, err
	}

	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.state = HistoricalState{
		City:    city,
		Date:    date.Format(models.HistoricalDateLayout),
		Loading: true,
	}
	p.mu.Unlock()

	record, err := p.repo.FetchHistorical(ctx, city, unit, date)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		return record, err
	}
	p.state.Loading = false
	if err != nil {
		p.state.Error = models.UserMessage(err, "Failed to fetch historical data")
		p.l.Warning("historical data not available", map[string]any{"city": city, "err": err})
		return models.HistoricalRecord{}, err
	}
	p.state.Record = &record
	return record, nil
}

func (p *HistoricalPanel) State() HistoricalState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}
