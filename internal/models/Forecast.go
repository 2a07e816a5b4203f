package models

import (
	"fmt"
	"sort"
)

type Astro struct {
	Sunrise          string  `json:"sunrise" example:"06:12 AM"`
	Sunset           string  `json:"sunset" example:"09:41 PM"`
	Moonrise         string  `json:"moonrise"`
	Moonset          string  `json:"moonset"`
	MoonPhase        string  `json:"moon_phase" example:"Waxing Crescent"`
	MoonIllumination float64 `json:"moon_illumination" example:"12"`
}

type HourlySample struct {
	Time         string   `json:"time" example:"300"`
	Temperature  float64  `json:"temperature" example:"18"`
	FeelsLike    float64  `json:"feelslike" example:"18"`
	Humidity     float64  `json:"humidity" example:"70"`
	WindSpeed    float64  `json:"wind_speed" example:"9"`
	WindDir      string   `json:"wind_dir" example:"SW"`
	Precip       float64  `json:"precip" example:"0"`
	ChanceOfRain float64  `json:"chanceofrain" example:"10"`
	Descriptions []string `json:"weather_descriptions"`
	Icons        []string `json:"weather_icons"`
}

type ForecastDay struct {
	Date         string         `json:"date" example:"2025-07-26"`
	DateEpoch    int64          `json:"date_epoch" example:"1753488000"`
	MinTemp      float64        `json:"mintemp" example:"17"`
	MaxTemp      float64        `json:"maxtemp" example:"29"`
	AvgTemp      float64        `json:"avgtemp" example:"23"`
	TotalSnow    float64        `json:"totalsnow" example:"0"`
	SunHour      float64        `json:"sunhour" example:"14.5"`
	UVIndex      float64        `json:"uv_index" example:"7"`
	Humidity     *float64       `json:"humidity,omitempty" example:"55"`
	Descriptions []string       `json:"weather_descriptions,omitempty"`
	Icons        []string       `json:"weather_icons,omitempty"`
	Astro        *Astro         `json:"astro,omitempty"`
	Hourly       []HourlySample `json:"hourly"`
}

// ForecastBundle is the forecast for exactly one city. It is replaced
// wholesale on every fetch.
type ForecastBundle struct {
	CityID   string                 `json:"city_id" example:"paris-france"`
	Unit     Unit                   `json:"unit" example:"metric"`
	Location Location               `json:"location"`
	Days     map[string]ForecastDay `json:"forecast"`
}

// SortedDates returns the forecast's ISO dates in chronological order.
func (f *ForecastBundle) SortedDates() []string {
	dates := make([]string, 0, len(f.Days))
	for d := range f.Days {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// RequestParams summarizes the bundle for logs.
func (f *ForecastBundle) RequestParams() string {
	return fmt.Sprintf("city: %s unit: %s days: %d", f.Location.Name, f.Unit, len(f.Days))
}
