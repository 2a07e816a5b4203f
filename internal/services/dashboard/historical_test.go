package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

func TestValidateHistoricalDate(t *testing.T) {
	now := time.Date(2025, time.July, 26, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		wantErr string
	}{
		{name: "earliest day", date: time.Date(2008, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{name: "today", date: time.Date(2025, time.July, 26, 0, 0, 0, 0, time.UTC)},
		{name: "today late in the day", date: time.Date(2025, time.July, 26, 23, 59, 0, 0, time.UTC)},
		{name: "ordinary past day", date: time.Date(2015, time.January, 21, 0, 0, 0, 0, time.UTC)},
		{
			name:    "day before the archive starts",
			date:    time.Date(2007, time.December, 31, 0, 0, 0, 0, time.UTC),
			wantErr: "Historical data is only available from 2008-01-01",
		},
		{
			name:    "tomorrow",
			date:    time.Date(2025, time.July, 27, 0, 0, 0, 0, time.UTC),
			wantErr: "Date cannot be in the future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHistoricalDate(tt.date, now)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "date", verr.Field)
			assert.Equal(t, tt.wantErr, verr.Message)
		})
	}
}

func TestParseHistoricalDate(t *testing.T) {
	now := time.Date(2025, time.July, 26, 0, 0, 0, 0, time.UTC)

	date, err := ParseHistoricalDate(" 2015-01-21 ", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2015, time.January, 21, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseHistoricalDate("21/01/2015", now)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Date must be formatted as YYYY-MM-DD", verr.Message)

	_, err = ParseHistoricalDate("2030-01-01", now)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Date cannot be in the future", verr.Message)
}

func newTestPanel(repo *MockRepository) *HistoricalPanel {
	p := NewHistoricalPanel(repo, logger.NewNop())
	p.now = func() time.Time { return time.Date(2025, time.July, 26, 12, 0, 0, 0, time.UTC) }
	return p
}

func TestHistoricalPanel_Fetch(t *testing.T) {
	p := newTestPanel(NewMockRepository())
	date := time.Date(2015, time.January, 21, 0, 0, 0, 0, time.UTC)

	record, err := p.Fetch(context.Background(), "London", models.UnitMetric, date)
	require.NoError(t, err)
	assert.Equal(t, "London", record.Location.Name)
	require.Contains(t, record.Days, "2015-01-21")
	assert.Equal(t, 10.0, record.Days["2015-01-21"].AvgTemp)

	state := p.State()
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
	assert.Equal(t, "London", state.City)
	assert.Equal(t, "2015-01-21", state.Date)
	require.NotNil(t, state.Record)
}

func TestHistoricalPanel_ImperialUnit(t *testing.T) {
	p := newTestPanel(NewMockRepository())

	record, err := p.Fetch(context.Background(), "Paris", models.UnitImperial, time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, models.UnitImperial, record.Unit)
	assert.Equal(t, 68.0, record.Days["2020-05-01"].AvgTemp)
}

func TestHistoricalPanel_RequiresCity(t *testing.T) {
	p := newTestPanel(NewMockRepository())

	_, err := p.Fetch(context.Background(), " ", models.UnitMetric, time.Date(2015, time.January, 21, 0, 0, 0, 0, time.UTC))
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Select a city first", verr.Message)
}

func TestHistoricalPanel_OutOfRangeDateIsNotRequested(t *testing.T) {
	p := newTestPanel(NewMockRepository())

	_, err := p.Fetch(context.Background(), "London", models.UnitMetric, time.Date(2007, time.December, 31, 0, 0, 0, 0, time.UTC))
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, p.State().City, "nothing was issued")
}

func TestHistoricalPanel_FailureStaysLocal(t *testing.T) {
	repo := NewMockRepository()
	repo.setCurrentFailure("london", &models.ServiceError{Code: 603, Message: "historical_queries_not_supported_on_plan"})
	p := newTestPanel(repo)

	_, err := p.Fetch(context.Background(), "London", models.UnitMetric, time.Date(2015, time.January, 21, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)

	state := p.State()
	assert.False(t, state.Loading)
	assert.Equal(t, "historical_queries_not_supported_on_plan", state.Error)
	assert.Nil(t, state.Record)
}

func TestHistoricalPanel_TransportFailureUsesFallback(t *testing.T) {
	repo := NewMockRepository()
	repo.setCurrentFailure("london", &models.TransportError{Op: "historical", Message: "request failed"})
	p := newTestPanel(repo)

	_, err := p.Fetch(context.Background(), "London", models.UnitMetric, time.Date(2015, time.January, 21, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch historical data", p.State().Error)
}
