package repositories

import (
	"bytes"
	"fmt"
	"strconv"

	"weather-dashboard/internal/models"
)

// flexFloat accepts numbers, numeric strings and null. The service sends
// coordinates as strings and occasionally nulls out optional metrics.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", b, err)
	}
	*f = flexFloat(v)
	return nil
}

type wsError struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

type wsEnvelope struct {
	Success *bool    `json:"success"`
	Error   *wsError `json:"error"`
}

type wsLocation struct {
	Name           string    `json:"name"`
	Country        string    `json:"country"`
	Region         string    `json:"region"`
	Lat            flexFloat `json:"lat"`
	Lon            flexFloat `json:"lon"`
	TimezoneID     string    `json:"timezone_id"`
	Localtime      string    `json:"localtime"`
	LocaltimeEpoch flexFloat `json:"localtime_epoch"`
	UTCOffset      string    `json:"utc_offset"`
}

type wsCurrent struct {
	ObservationTime string    `json:"observation_time"`
	Temperature     flexFloat `json:"temperature"`
	WeatherCode     flexFloat `json:"weather_code"`
	Icons           []string  `json:"weather_icons"`
	Descriptions    []string  `json:"weather_descriptions"`
	WindSpeed       flexFloat `json:"wind_speed"`
	WindDegree      flexFloat `json:"wind_degree"`
	WindDir         string    `json:"wind_dir"`
	Pressure        flexFloat `json:"pressure"`
	Precip          flexFloat `json:"precip"`
	Humidity        flexFloat `json:"humidity"`
	CloudCover      flexFloat `json:"cloudcover"`
	FeelsLike       flexFloat `json:"feelslike"`
	UVIndex         flexFloat `json:"uv_index"`
	Visibility      flexFloat `json:"visibility"`
}

type wsAstro struct {
	Sunrise          string    `json:"sunrise"`
	Sunset           string    `json:"sunset"`
	Moonrise         string    `json:"moonrise"`
	Moonset          string    `json:"moonset"`
	MoonPhase        string    `json:"moon_phase"`
	MoonIllumination flexFloat `json:"moon_illumination"`
}

type wsHourly struct {
	Time         string    `json:"time"`
	Temperature  flexFloat `json:"temperature"`
	FeelsLike    flexFloat `json:"feelslike"`
	Humidity     flexFloat `json:"humidity"`
	WindSpeed    flexFloat `json:"wind_speed"`
	WindDir      string    `json:"wind_dir"`
	Precip       flexFloat `json:"precip"`
	ChanceOfRain flexFloat `json:"chanceofrain"`
	Descriptions []string  `json:"weather_descriptions"`
	Icons        []string  `json:"weather_icons"`
}

type wsForecastDay struct {
	Date         string     `json:"date"`
	DateEpoch    flexFloat  `json:"date_epoch"`
	Astro        *wsAstro   `json:"astro"`
	MinTemp      flexFloat  `json:"mintemp"`
	MaxTemp      flexFloat  `json:"maxtemp"`
	AvgTemp      flexFloat  `json:"avgtemp"`
	TotalSnow    flexFloat  `json:"totalsnow"`
	SunHour      flexFloat  `json:"sunhour"`
	UVIndex      flexFloat  `json:"uv_index"`
	Humidity     *flexFloat `json:"humidity"`
	Descriptions []string   `json:"weather_descriptions"`
	Icons        []string   `json:"weather_icons"`
	Hourly       []wsHourly `json:"hourly"`
}

type wsHistoricalDay struct {
	Date         string     `json:"date"`
	MinTemp      flexFloat  `json:"mintemp"`
	MaxTemp      flexFloat  `json:"maxtemp"`
	AvgTemp      flexFloat  `json:"avgtemp"`
	TotalSnow    flexFloat  `json:"totalsnow"`
	SunHour      flexFloat  `json:"sunhour"`
	UVIndex      flexFloat  `json:"uv_index"`
	Humidity     flexFloat  `json:"humidity"`
	Precip       flexFloat  `json:"precip"`
	WindSpeed    flexFloat  `json:"windspeed"`
	Descriptions []string   `json:"weather_descriptions"`
	Icons        []string   `json:"weather_icons"`
	Hourly       []wsHourly `json:"hourly"`
}

type wsCurrentResponse struct {
	Location *wsLocation `json:"location"`
	Current  *wsCurrent  `json:"current"`
}

type wsForecastResponse struct {
	Location *wsLocation               `json:"location"`
	Forecast map[string]wsForecastDay `json:"forecast"`
}

type wsHistoricalResponse struct {
	Location   *wsLocation                 `json:"location"`
	Historical map[string]wsHistoricalDay `json:"historical"`
}

func (l *wsLocation) toModel() models.Location {
	return models.Location{
		Name:           l.Name,
		Country:        l.Country,
		Region:         l.Region,
		Lat:            float64(l.Lat),
		Lon:            float64(l.Lon),
		TimezoneID:     l.TimezoneID,
		Localtime:      l.Localtime,
		LocaltimeEpoch: int64(l.LocaltimeEpoch),
		UTCOffset:      l.UTCOffset,
	}
}

func (c *wsCurrent) toModel() models.CurrentConditions {
	return models.CurrentConditions{
		ObservationTime: c.ObservationTime,
		Temperature:     float64(c.Temperature),
		FeelsLike:       float64(c.FeelsLike),
		Humidity:        float64(c.Humidity),
		Pressure:        float64(c.Pressure),
		Precip:          float64(c.Precip),
		WindSpeed:       float64(c.WindSpeed),
		WindDegree:      float64(c.WindDegree),
		WindDir:         c.WindDir,
		Visibility:      float64(c.Visibility),
		CloudCover:      float64(c.CloudCover),
		UVIndex:         float64(c.UVIndex),
		WeatherCode:     int(c.WeatherCode),
		Descriptions:    c.Descriptions,
		Icons:           c.Icons,
	}
}

func (h wsHourly) toModel() models.HourlySample {
	return models.HourlySample{
		Time:         h.Time,
		Temperature:  float64(h.Temperature),
		FeelsLike:    float64(h.FeelsLike),
		Humidity:     float64(h.Humidity),
		WindSpeed:    float64(h.WindSpeed),
		WindDir:      h.WindDir,
		Precip:       float64(h.Precip),
		ChanceOfRain: float64(h.ChanceOfRain),
		Descriptions: h.Descriptions,
		Icons:        h.Icons,
	}
}

func (d wsForecastDay) toModel(key string) models.ForecastDay {
	day := models.ForecastDay{
		Date:         d.Date,
		DateEpoch:    int64(d.DateEpoch),
		MinTemp:      float64(d.MinTemp),
		MaxTemp:      float64(d.MaxTemp),
		AvgTemp:      float64(d.AvgTemp),
		TotalSnow:    float64(d.TotalSnow),
		SunHour:      float64(d.SunHour),
		UVIndex:      float64(d.UVIndex),
		Descriptions: d.Descriptions,
		Icons:        d.Icons,
		Hourly:       make([]models.HourlySample, 0, len(d.Hourly)),
	}
	if day.Date == "" {
		day.Date = key
	}
	if d.Humidity != nil {
		h := float64(*d.Humidity)
		day.Humidity = &h
	}
	if d.Astro != nil {
		day.Astro = &models.Astro{
			Sunrise:          d.Astro.Sunrise,
			Sunset:           d.Astro.Sunset,
			Moonrise:         d.Astro.Moonrise,
			Moonset:          d.Astro.Moonset,
			MoonPhase:        d.Astro.MoonPhase,
			MoonIllumination: float64(d.Astro.MoonIllumination),
		}
	}
	for _, h := range d.Hourly {
		day.Hourly = append(day.Hourly, h.toModel())
	}
	return day
}

func (d wsHistoricalDay) toModel(key string) models.HistoricalDay {
	day := models.HistoricalDay{
		Date:         d.Date,
		MinTemp:      float64(d.MinTemp),
		MaxTemp:      float64(d.MaxTemp),
		AvgTemp:      float64(d.AvgTemp),
		TotalSnow:    float64(d.TotalSnow),
		SunHour:      float64(d.SunHour),
		UVIndex:      float64(d.UVIndex),
		Humidity:     float64(d.Humidity),
		Precip:       float64(d.Precip),
		WindSpeed:    float64(d.WindSpeed),
		Descriptions: d.Descriptions,
		Icons:        d.Icons,
	}
	if day.Date == "" {
		day.Date = key
	}
	// Some plans omit the daily aggregates and only send hourly samples.
	if len(d.Hourly) > 0 {
		midday := d.Hourly[len(d.Hourly)/2]
		if day.Humidity == 0 {
			day.Humidity = float64(midday.Humidity)
		}
		if day.WindSpeed == 0 {
			day.WindSpeed = float64(midday.WindSpeed)
		}
		if len(day.Descriptions) == 0 {
			day.Descriptions = midday.Descriptions
			day.Icons = midday.Icons
		}
		if day.Precip == 0 {
			var total float64
			for _, h := range d.Hourly {
				total += float64(h.Precip)
			}
			day.Precip = total
		}
	}
	return day
}
