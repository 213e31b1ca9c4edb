package healthmetrics

import "testing"

func TestAssessWeather(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		humidity float64
		score    int
		level    WeatherLevel
		severity Severity
	}{
		{name: "mild", temp: 20, humidity: 50, score: 0, level: WeatherLow, severity: SeveritySuccess},
		{name: "hot and humid", temp: 40, humidity: 90, score: 50, level: WeatherHigh, severity: SeverityDanger},
		{name: "warm and muggy", temp: 32, humidity: 70, score: 25, level: WeatherModerate, severity: SeverityWarning},
		{name: "freezing and dry", temp: 0, humidity: 10, score: 40, level: WeatherModerate, severity: SeverityWarning},
		{name: "cool", temp: 8, humidity: 50, score: 12, level: WeatherLow, severity: SeveritySuccess},
		{name: "boundary 20", temp: 31, humidity: 20, score: 15, level: WeatherLow, severity: SeveritySuccess},
		{name: "boundary 45", temp: 36, humidity: 19, score: 45, level: WeatherModerate, severity: SeverityWarning},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := AssessWeather(WeatherReading{Temperature: tt.temp, HumidityPercent: tt.humidity})
			if got.Score != tt.score || got.Level != tt.level || got.Severity != tt.severity {
				t.Fatalf("AssessWeather(%v, %v) = %+v, want score=%d level=%s severity=%s",
					tt.temp, tt.humidity, got, tt.score, tt.level, tt.severity)
			}
		})
	}
}

func TestAssessWeatherScoreInRange(t *testing.T) {
	for temp := -30.0; temp <= 50; temp += 5 {
		for hum := 0.0; hum <= 100; hum += 10 {
			got := AssessWeather(WeatherReading{Temperature: temp, HumidityPercent: hum})
			if got.Score < 0 || got.Score > 100 {
				t.Fatalf("score %d out of range for %v/%v", got.Score, temp, hum)
			}
		}
	}
}
