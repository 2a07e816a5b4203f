package models

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

type Location struct {
	Name           string  `json:"name" example:"Paris"`
	Country        string  `json:"country" example:"France"`
	Region         string  `json:"region" example:"Ile-de-France"`
	Lat            float64 `json:"lat" example:"48.867"`
	Lon            float64 `json:"lon" example:"2.333"`
	TimezoneID     string  `json:"timezone_id" example:"Europe/Paris"`
	Localtime      string  `json:"localtime" example:"2025-07-25 14:05"`
	LocaltimeEpoch int64   `json:"localtime_epoch" example:"1753452300"`
	UTCOffset      string  `json:"utc_offset" example:"2.0"`
}

// SameCity reports whether two locations name the same place.
func (l Location) SameCity(other Location) bool {
	return strings.EqualFold(strings.TrimSpace(l.Name), strings.TrimSpace(other.Name)) &&
		strings.EqualFold(strings.TrimSpace(l.Country), strings.TrimSpace(other.Country))
}

type CurrentConditions struct {
	ObservationTime string   `json:"observation_time" example:"12:05 PM"`
	Temperature     float64  `json:"temperature" example:"24"`
	FeelsLike       float64  `json:"feelslike" example:"25"`
	Humidity        float64  `json:"humidity" example:"53"`
	Pressure        float64  `json:"pressure" example:"1016"`
	Precip          float64  `json:"precip" example:"0"`
	WindSpeed       float64  `json:"wind_speed" example:"11"`
	WindDegree      float64  `json:"wind_degree" example:"240"`
	WindDir         string   `json:"wind_dir" example:"WSW"`
	Visibility      float64  `json:"visibility" example:"10"`
	CloudCover      float64  `json:"cloudcover" example:"25"`
	UVIndex         float64  `json:"uv_index" example:"6"`
	WeatherCode     int      `json:"weather_code" example:"116"`
	Descriptions    []string `json:"weather_descriptions"`
	Icons           []string `json:"weather_icons"`
}

// CitySnapshot is one current-weather result, identified by its derived ID.
type CitySnapshot struct {
	ID       string            `json:"id" example:"paris-france"`
	Unit     Unit              `json:"unit" example:"metric"`
	Location Location          `json:"location"`
	Current  CurrentConditions `json:"current"`
}

// CityID derives the registry key: "name-country", lowercased, whitespace runs
// collapsed to "-".
func CityID(name, country string) string {
	id := strings.TrimSpace(name) + "-" + strings.TrimSpace(country)
	return whitespaceRun.ReplaceAllString(strings.ToLower(id), "-")
}

// Clone returns a copy that shares no slices with s.
func (s CitySnapshot) Clone() CitySnapshot {
	s.Current.Descriptions = append([]string(nil), s.Current.Descriptions...)
	s.Current.Icons = append([]string(nil), s.Current.Icons...)
	return s
}
