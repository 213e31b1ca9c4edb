package weather

import (
	"context"
	"errors"
	"strings"
	"time"

	"pulseguard-backend/internal/healthmetrics"
	"pulseguard-backend/internal/shared/metrics"
	"pulseguard-backend/internal/shared/telemetry"
)

const DefaultTTL = 10 * time.Minute

var advice = map[healthmetrics.WeatherLevel]string{
	healthmetrics.WeatherLow:      "Current weather conditions are favorable for BP management.",
	healthmetrics.WeatherModerate: "Take precautions: stay hydrated and avoid extreme exertion.",
	healthmetrics.WeatherHigh:     "Weather conditions may elevate BP. Stay indoors and monitor closely.",
}

// Assessment pairs conditions (when looked up by city) with the BP risk.
type Assessment struct {
	Conditions *Conditions               `json:"conditions,omitempty"`
	Risk       healthmetrics.WeatherRisk `json:"risk"`
	Advice     string                    `json:"advice"`
}

type Service struct {
	Provider Provider
	Cache    Cache
	TTL      time.Duration
}

// NewService wires a provider with a cache. A nil provider makes Lookup
// report ErrNotConfigured; a nil cache falls back to memory.
func NewService(provider Provider, cache Cache, ttl time.Duration) *Service {
	if cache == nil {
		cache = NewMemoryCache(nil)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{Provider: provider, Cache: cache, TTL: ttl}
}

func (s *Service) Lookup(ctx context.Context, city string) (Assessment, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return Assessment{}, ErrCityRequired
	}

	cond, ok, err := s.Cache.Get(ctx, city)
	if err != nil {
		telemetry.Error("weather.cache.get_failed", map[string]any{"city": city, "error": err.Error()})
	}
	if ok {
		metrics.IncWeatherCacheHits()
		return assess(&cond), nil
	}

	if s.Provider == nil {
		return Assessment{}, ErrNotConfigured
	}
	start := time.Now()
	metrics.IncWeatherLookups()
	cond, err = s.Provider.Current(ctx, city)
	elapsed := metrics.SinceMillis(start)
	metrics.ObserveWeatherLookupMs(elapsed)
	if err != nil {
		metrics.IncWeatherLookupFailures()
		if !errors.Is(err, ErrCityNotFound) {
			telemetry.Error("weather.lookup.failed", map[string]any{
				"city":        city,
				"duration_ms": elapsed,
				"error":       err.Error(),
			})
		}
		return Assessment{}, err
	}
	telemetry.Info("weather.lookup", map[string]any{"city": city, "duration_ms": elapsed})

	if err := s.Cache.Set(ctx, city, cond, s.TTL); err != nil {
		telemetry.Error("weather.cache.set_failed", map[string]any{"city": city, "error": err.Error()})
	}
	return assess(&cond), nil
}

// Assess scores a manually entered reading.
func (s *Service) Assess(temperature, humidity float64) Assessment {
	return assessReading(temperature, humidity)
}

func assessReading(temperature, humidity float64) Assessment {
	risk := healthmetrics.AssessWeather(healthmetrics.WeatherReading{
		Temperature:     temperature,
		HumidityPercent: humidity,
	})
	return Assessment{Risk: risk, Advice: advice[risk.Level]}
}

func assess(cond *Conditions) Assessment {
	out := assessReading(cond.Temperature, cond.Humidity)
	out.Conditions = cond
	return out
}
