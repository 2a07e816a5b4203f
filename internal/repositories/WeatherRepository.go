package repositories

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"weather-dashboard/config"
	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

// WeatherRepository is the weather service as seen by the dashboard. Each call
// is exactly one round trip; implementations must not cache or retry.
type WeatherRepository interface {
	Name() string
	FetchCurrent(ctx context.Context, query string, unit models.Unit) (models.CitySnapshot, error)
	FetchForecast(ctx context.Context, query string, unit models.Unit, days int) (models.ForecastBundle, error)
	FetchHistorical(ctx context.Context, query string, unit models.Unit, date time.Time) (models.HistoricalRecord, error)
}

type schemeKey struct{}

// WithScheme overrides the URL scheme for fetches made with ctx. The HTTP
// layer sets "https" when the page itself was served over https.
func WithScheme(ctx context.Context, scheme string) context.Context {
	return context.WithValue(ctx, schemeKey{}, scheme)
}

// SchemeFrom returns the scheme set by WithScheme, or fallback when none is set.
func SchemeFrom(ctx context.Context, fallback string) string {
	if s, ok := ctx.Value(schemeKey{}).(string); ok && (s == "http" || s == "https") {
		return s
	}
	return fallback
}

func InitWeatherRepository(cfg *config.Config, l *logger.Logger) WeatherRepository {
	httpClient := &http.Client{}
	if cfg.Weatherstack.Timeout > 0 {
		httpClient.Timeout = time.Duration(cfg.Weatherstack.Timeout) * time.Second
	}

	if !cfg.HasAccessKey() {
		l.Warning("weatherstack access key is not configured, every fetch will be rejected by the service")
	}

	return NewWeatherstackRepository(cfg.Weatherstack, l, httpClient)
}

// restyLogger routes resty's internal messages into the application logger.
type restyLogger struct {
	l *logger.Logger
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.l.Error(fmt.Errorf(format, v...), map[string]any{"component": "resty"})
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.l.Warning(fmt.Sprintf(format, v...), map[string]any{"component": "resty"})
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.l.Debug(fmt.Sprintf(format, v...), map[string]any{"component": "resty"})
}
