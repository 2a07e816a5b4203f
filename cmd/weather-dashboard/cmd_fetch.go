package main

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/dashboard"
)

var (
	fetchCountry string
	fetchUnit    string
	fetchDays    int
	fetchDate    string
)

var currentCmd = &cobra.Command{
	Use:   "current <city>",
	Short: "Print current conditions for a city",
	Args:  cobra.MinimumNArgs(1),
	RunE: runFetch(func(ctx context.Context, repo repositories.WeatherRepository, query string, unit models.Unit) (any, error) {
		return repo.FetchCurrent(ctx, query, unit)
	}),
}

var forecastCmd = &cobra.Command{
	Use:   "forecast <city>",
	Short: "Print the daily forecast for a city",
	Args:  cobra.MinimumNArgs(1),
	RunE: runFetch(func(ctx context.Context, repo repositories.WeatherRepository, query string, unit models.Unit) (any, error) {
		days := fetchDays
		if days <= 0 {
			days = cnf.Weatherstack.ForecastDays
		}
		return repo.FetchForecast(ctx, query, unit, days)
	}),
}

var historicalCmd = &cobra.Command{
	Use:   "historical <city>",
	Short: "Print the weather of a past day for a city",
	Args:  cobra.MinimumNArgs(1),
	RunE: runFetch(func(ctx context.Context, repo repositories.WeatherRepository, query string, unit models.Unit) (any, error) {
		date, err := dashboard.ParseHistoricalDate(fetchDate, time.Now())
		if err != nil {
			return nil, err
		}
		return repo.FetchHistorical(ctx, query, unit, date)
	}),
}

func init() {
	for _, c := range []*cobra.Command{currentCmd, forecastCmd, historicalCmd} {
		c.Flags().StringVar(&fetchCountry, "country", "", "country code narrowing the city name, e.g. FR")
		c.Flags().StringVar(&fetchUnit, "unit", "metric", "metric or imperial")
		rootCmd.AddCommand(c)
	}
	forecastCmd.Flags().IntVar(&fetchDays, "days", 0, "number of forecast days (defaults to the configured value)")
	historicalCmd.Flags().StringVar(&fetchDate, "date", "", "day to look up, YYYY-MM-DD")
	_ = historicalCmd.MarkFlagRequired("date")
}

type fetchFunc func(ctx context.Context, repo repositories.WeatherRepository, query string, unit models.Unit) (any, error)

// runFetch wires a one-shot lookup: logs go to stderr, the result is printed
// to stdout as JSON.
func runFetch(fetch fetchFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := bootstrap(os.Stderr); err != nil {
			return err
		}

		unit, err := models.ParseUnit(fetchUnit)
		if err != nil {
			return err
		}

		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			return &models.ValidationError{Field: "city", Message: "Please enter a city name"}
		}
		if c := strings.TrimSpace(fetchCountry); c != "" {
			query += "," + c
		}

		repo := repositories.InitWeatherRepository(cnf, l)
		result, err := fetch(cmd.Context(), repo, query, unit)
		if err != nil {
			return errors.Wrapf(err, "%s %q", cmd.Name(), query)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
}
