package config

import (
	"time"
	// timezone names must resolve on hosts without zoneinfo
	_ "time/tzdata"

	"github.com/pkg/errors"
)

type AppConfig struct {
	Currency string `yaml:"currency-symbol"`
	TimeZone string `yaml:"timezone"`
}

func (s *AppConfig) CurrencySymbol() string {
	return s.Currency
}

// Location is used to decide what "today" is. Validate guarantees it loads.
func (s *AppConfig) Location() *time.Location {
	loc, err := s.location()
	if err != nil {
		return time.UTC
	}
	return loc
}

func (s *AppConfig) location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.TimeZone)
	return loc, errors.Wrapf(err, "app.timezone %q", s.TimeZone)
}
