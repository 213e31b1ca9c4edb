package weather

import "errors"

var (
	ErrCityRequired  = errors.New("city is required")
	ErrCityNotFound  = errors.New("city not found")
	ErrNotConfigured = errors.New("weather provider not configured")
)
