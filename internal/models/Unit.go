package models

import (
	"fmt"
	"strings"
)

// Unit is the measurement system requested from the weather service.
type Unit string

const (
	UnitMetric   Unit = "metric"
	UnitImperial Unit = "imperial"
)

// ParseUnit accepts both the long names and the service's one-letter codes.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric", "m", "":
		return UnitMetric, nil
	case "imperial", "f":
		return UnitImperial, nil
	}
	return "", fmt.Errorf("unknown unit %q", s)
}

// QueryParam is the value of the "units" query parameter.
func (u Unit) QueryParam() string {
	if u == UnitImperial {
		return "f"
	}
	return "m"
}

func (u Unit) Toggle() Unit {
	if u == UnitImperial {
		return UnitMetric
	}
	return UnitImperial
}

// Suffixes are the labels rendered next to numeric fields.
type Suffixes struct {
	Temperature string `json:"temperature" example:"°C"`
	Speed       string `json:"speed" example:"km/h"`
	Distance    string `json:"distance" example:"km"`
	Precip      string `json:"precip" example:"mm"`
	Pressure    string `json:"pressure" example:"mb"`
}

func (u Unit) Suffixes() Suffixes {
	if u == UnitImperial {
		return Suffixes{Temperature: "°F", Speed: "mph", Distance: "mi", Precip: "in", Pressure: "mb"}
	}
	return Suffixes{Temperature: "°C", Speed: "km/h", Distance: "km", Precip: "mm", Pressure: "mb"}
}
