package dashboard

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var (
	regionIndexOnce sync.Once
	// lowercased English country name -> region
	regionByName map[string]language.Region
)

func buildRegionIndex() {
	regionByName = make(map[string]language.Region)
	names := display.English.Regions()
	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			r, err := language.ParseRegion(string([]rune{a, b}))
			if err != nil || !r.IsCountry() {
				continue
			}
			if name := names.Name(r); name != "" {
				regionByName[strings.ToLower(name)] = r
			}
		}
	}
}

// resolveRegion accepts either an ISO 3166 alpha-2 code or an English country
// name, which is what the weather service puts in location.country.
func resolveRegion(country string) (language.Region, bool) {
	country = strings.TrimSpace(country)
	if len(country) == 2 {
		if r, err := language.ParseRegion(country); err == nil && r.IsCountry() {
			return r, true
		}
	}
	regionIndexOnce.Do(buildRegionIndex)
	r, ok := regionByName[strings.ToLower(country)]
	return r, ok
}

// CountryLabel renders country in the given locale, or returns it unchanged
// when it cannot be resolved.
func CountryLabel(country, locale string) string {
	r, ok := resolveRegion(country)
	if !ok {
		return country
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	namer := display.Regions(tag)
	if namer == nil {
		namer = display.English.Regions()
	}
	if name := namer.Name(r); name != "" {
		return name
	}
	return country
}

// CountryFlag returns the regional-indicator emoji pair for country.
func CountryFlag(country string) string {
	r, ok := resolveRegion(country)
	if !ok {
		return ""
	}
	code := r.String()
	flag := make([]rune, 0, 2)
	for _, c := range strings.ToUpper(code) {
		flag = append(flag, 0x1F1E6+(c-'A'))
	}
	return string(flag)
}
