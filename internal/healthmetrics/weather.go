package healthmetrics

// WeatherLevel buckets a weather risk score.
type WeatherLevel string

const (
	WeatherLow      WeatherLevel = "Low"
	WeatherModerate WeatherLevel = "Moderate"
	WeatherHigh     WeatherLevel = "High"
)

// WeatherRisk is the outcome of AssessWeather.
type WeatherRisk struct {
	Level    WeatherLevel `json:"level"`
	Severity Severity     `json:"severity"`
	Score    int          `json:"score"`
}

// AssessWeather scores how strongly ambient temperature and humidity are
// likely to push blood pressure.
func AssessWeather(r WeatherReading) WeatherRisk {
	score := 0
	switch {
	case r.Temperature > 35:
		score += 30
	case r.Temperature > 30:
		score += 15
	case r.Temperature < 5:
		score += 25
	case r.Temperature < 10:
		score += 12
	}
	switch {
	case r.HumidityPercent > 80:
		score += 20
	case r.HumidityPercent > 60:
		score += 10
	}
	if r.HumidityPercent < 20 {
		score += 15
	}

	risk := WeatherRisk{Score: clampScore(score)}
	switch {
	case score <= 20:
		risk.Level, risk.Severity = WeatherLow, SeveritySuccess
	case score <= 45:
		risk.Level, risk.Severity = WeatherModerate, SeverityWarning
	default:
		risk.Level, risk.Severity = WeatherHigh, SeverityDanger
	}
	return risk
}
