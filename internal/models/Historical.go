package models

import "time"

// HistoricalDateLayout is the date format the service expects.
const HistoricalDateLayout = "2006-01-02"

// EarliestHistoricalDate is the first day the service keeps history for.
var EarliestHistoricalDate = time.Date(2008, time.January, 1, 0, 0, 0, 0, time.UTC)

type HistoricalDay struct {
	Date         string   `json:"date" example:"2015-01-21"`
	MinTemp      float64  `json:"mintemp" example:"-2"`
	MaxTemp      float64  `json:"maxtemp" example:"4"`
	AvgTemp      float64  `json:"avgtemp" example:"1"`
	TotalSnow    float64  `json:"totalsnow" example:"0"`
	SunHour      float64  `json:"sunhour" example:"4.3"`
	UVIndex      float64  `json:"uv_index" example:"1"`
	Humidity     float64  `json:"humidity" example:"80"`
	Precip       float64  `json:"precip" example:"0.3"`
	WindSpeed    float64  `json:"windspeed" example:"14"`
	Descriptions []string `json:"weather_descriptions"`
	Icons        []string `json:"weather_icons"`
}

type HistoricalRecord struct {
	Unit     Unit                     `json:"unit" example:"metric"`
	Location Location                 `json:"location"`
	Days     map[string]HistoricalDay `json:"historical"`
}
