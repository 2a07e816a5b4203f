package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"weather-dashboard/config"
	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

const (
	endpointCurrent    = "current"
	endpointForecast   = "forecast"
	endpointHistorical = "historical"

	// Weatherstack answers unknown locations with this code.
	errCodeRequestFailed = 615

	fallbackCurrentMessage    = "City not found"
	fallbackForecastMessage   = "Forecast data not available"
	fallbackHistoricalMessage = "Failed to fetch historical data"
)

type WeatherstackRepository struct {
	accessKey string
	host      string
	scheme    string
	client    *resty.Client
	l         *logger.Logger
}

func NewWeatherstackRepository(cfg config.WeatherstackConfig, l *logger.Logger, httpClient *http.Client) *WeatherstackRepository {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	client := resty.NewWithClient(httpClient).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{l: l})

	scheme := cfg.Scheme
	if scheme == "" {
		scheme = "http"
	}

	return &WeatherstackRepository{
		accessKey: cfg.AccessKey,
		host:      cfg.Host,
		scheme:    scheme,
		client:    client,
		l:         l,
	}
}

func (w *WeatherstackRepository) Name() string {
	return "weatherstack"
}

func (w *WeatherstackRepository) FetchCurrent(ctx context.Context, query string, unit models.Unit) (models.CitySnapshot, error) {
	var payload wsCurrentResponse
	if err := w.get(ctx, endpointCurrent, query, unit, nil, fallbackCurrentMessage, &payload); err != nil {
		return models.CitySnapshot{}, err
	}

	if payload.Location == nil || payload.Location.Name == "" {
		return models.CitySnapshot{}, malformed(endpointCurrent, "location block missing")
	}
	if payload.Current == nil {
		return models.CitySnapshot{}, malformed(endpointCurrent, "current block missing")
	}

	loc := payload.Location.toModel()
	return models.CitySnapshot{
		ID:       models.CityID(loc.Name, loc.Country),
		Unit:     unit,
		Location: loc,
		Current:  payload.Current.toModel(),
	}, nil
}

func (w *WeatherstackRepository) FetchForecast(ctx context.Context, query string, unit models.Unit, days int) (models.ForecastBundle, error) {
	extra := map[string]string{"forecast_days": strconv.Itoa(days)}

	var payload wsForecastResponse
	if err := w.get(ctx, endpointForecast, query, unit, extra, fallbackForecastMessage, &payload); err != nil {
		return models.ForecastBundle{}, err
	}

	if payload.Location == nil || payload.Location.Name == "" {
		return models.ForecastBundle{}, malformed(endpointForecast, "location block missing")
	}
	if payload.Forecast == nil {
		return models.ForecastBundle{}, malformed(endpointForecast, "forecast block missing")
	}

	loc := payload.Location.toModel()
	bundle := models.ForecastBundle{
		CityID:   models.CityID(loc.Name, loc.Country),
		Unit:     unit,
		Location: loc,
		Days:     make(map[string]models.ForecastDay, len(payload.Forecast)),
	}
	for date, day := range payload.Forecast {
		bundle.Days[date] = day.toModel(date)
	}

	w.l.Debug("forecast decoded", map[string]any{"params": bundle.RequestParams()})
	return bundle, nil
}

func (w *WeatherstackRepository) FetchHistorical(ctx context.Context, query string, unit models.Unit, date time.Time) (models.HistoricalRecord, error) {
	extra := map[string]string{"historical_date": date.Format(models.HistoricalDateLayout)}

	var payload wsHistoricalResponse
	if err := w.get(ctx, endpointHistorical, query, unit, extra, fallbackHistoricalMessage, &payload); err != nil {
		return models.HistoricalRecord{}, err
	}

	if payload.Location == nil || payload.Location.Name == "" {
		return models.HistoricalRecord{}, malformed(endpointHistorical, "location block missing")
	}
	if payload.Historical == nil {
		return models.HistoricalRecord{}, malformed(endpointHistorical, "historical block missing")
	}

	record := models.HistoricalRecord{
		Unit:     unit,
		Location: payload.Location.toModel(),
		Days:     make(map[string]models.HistoricalDay, len(payload.Historical)),
	}
	for d, day := range payload.Historical {
		record.Days[d] = day.toModel(d)
	}
	return record, nil
}

// get performs the single round trip shared by all endpoints and decodes the
// body into out. Service-reported errors win over the HTTP status.
func (w *WeatherstackRepository) get(
	ctx context.Context,
	endpoint, query string,
	unit models.Unit,
	extra map[string]string,
	fallback string,
	out any,
) error {
	url := fmt.Sprintf("%s://%s/%s", SchemeFrom(ctx, w.scheme), w.host, endpoint)

	params := map[string]string{
		"access_key": w.accessKey,
		"query":      query,
		"units":      unit.QueryParam(),
	}
	for k, v := range extra {
		params[k] = v
	}

	w.l.Info("making weatherstack API request", map[string]any{
		"endpoint": endpoint,
		"query":    query,
		"units":    unit.QueryParam(),
	})

	resp, err := w.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(url)
	if err != nil {
		return &models.TransportError{Op: endpoint, Message: "request failed", Err: err}
	}

	w.l.Info("received weatherstack API response", map[string]any{
		"endpoint":   endpoint,
		"status":     resp.StatusCode(),
		"statusText": resp.Status(),
		"duration":   resp.Time().String(),
	})

	body := resp.Body()

	var envelope wsEnvelope
	envErr := json.Unmarshal(body, &envelope)
	if envErr == nil && envelope.Error != nil {
		return serviceFailure(query, envelope.Error, fallback)
	}

	if !resp.IsSuccess() {
		return &models.TransportError{
			Op:      endpoint,
			Message: fmt.Sprintf("HTTP error (status %d): %s", resp.StatusCode(), resp.Status()),
		}
	}

	if envErr != nil {
		return &models.TransportError{Op: endpoint, Message: "failed to parse JSON response", Err: envErr}
	}
	if envelope.Success != nil && !*envelope.Success {
		return &models.ServiceError{Message: fallback}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &models.TransportError{Op: endpoint, Message: "unexpected payload shape", Err: err}
	}
	return nil
}

func serviceFailure(query string, e *wsError, fallback string) error {
	msg := e.Info
	if msg == "" {
		msg = fallback
	}
	if e.Code == errCodeRequestFailed {
		return &models.NotFoundError{Query: query, Message: msg}
	}
	return &models.ServiceError{Code: e.Code, Type: e.Type, Message: msg}
}

func malformed(endpoint, msg string) error {
	return &models.TransportError{Op: endpoint, Message: "malformed payload: " + msg}
}
