package dashboard

import "weather-dashboard/internal/models"

// CityCard is one registry entry as the card grid renders it.
type CityCard struct {
	models.CitySnapshot
	Selected bool `json:"selected"`
}

type CountryView struct {
	Country string     `json:"country" example:"France"`
	Label   string     `json:"label" example:"France"`
	Flag    string     `json:"flag" example:"🇫🇷"`
	Cities  []CityCard `json:"cities"`
}

// View is everything the presentation layer needs to render the dashboard.
type View struct {
	Unit           models.Unit            `json:"unit" example:"metric"`
	Suffixes       models.Suffixes        `json:"suffixes"`
	Loading        bool                   `json:"loading"`
	Countries      []CountryView          `json:"countries"`
	Selected       *models.CitySnapshot   `json:"selected,omitempty"`
	Forecast       *models.ForecastBundle `json:"forecast,omitempty"`
	ForecastStatus ForecastStatus         `json:"forecast_status" example:"ready"`
	Notices        []Notice               `json:"notices"`
}

// View snapshots the state and drains pending notices. Country labels are
// rendered for locale.
func (d *Dashboard) View(locale string) View {
	d.mu.Lock()
	defer d.mu.Unlock()

	v := View{
		Unit:           d.unit,
		Suffixes:       d.unit.Suffixes(),
		Loading:        d.inFlight > 0,
		Countries:      make([]CountryView, 0),
		ForecastStatus: d.forecastStatus,
		Notices:        d.notices,
	}
	d.notices = nil
	if v.Notices == nil {
		v.Notices = []Notice{}
	}

	for _, group := range d.registry.GroupByCountry() {
		cv := CountryView{
			Country: group.Country,
			Label:   CountryLabel(group.Country, locale),
			Flag:    CountryFlag(group.Country),
			Cities:  make([]CityCard, 0, len(group.Cities)),
		}
		for _, c := range group.Cities {
			cv.Cities = append(cv.Cities, CityCard{CitySnapshot: c, Selected: c.ID == d.selectedID})
		}
		v.Countries = append(v.Countries, cv)
	}

	if d.selectedID != "" {
		if s, ok := d.registry.Get(d.selectedID); ok {
			v.Selected = &s
		}
	}

	if d.forecast != nil && d.forecastStatus == ForecastReady && d.forecast.CityID == d.selectedID {
		f := *d.forecast
		v.Forecast = &f
	}

	return v
}
