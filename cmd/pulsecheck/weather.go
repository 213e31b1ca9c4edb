package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pulseguard-backend/internal/shared/config"
	"pulseguard-backend/internal/weather"
)

func newWeatherCmd() *cobra.Command {
	var (
		city     string
		temp     float64
		humidity float64
	)
	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Score weather-related blood pressure risk",
		RunE: func(cmd *cobra.Command, args []string) error {
			if city != "" {
				cfg := config.Load()
				client, err := weather.NewClient(cfg.WeatherAPIKey, cfg.WeatherBaseURL, cfg.WeatherTimeout)
				if err != nil {
					return fmt.Errorf("--city needs WEATHER_API_KEY: %w", err)
				}
				out, err := weather.NewService(client, nil, 0).Lookup(cmd.Context(), city)
				if err != nil {
					return err
				}
				printWeather(cmd.OutOrStdout(), out)
				return nil
			}
			if !cmd.Flags().Changed("temp") || !cmd.Flags().Changed("humidity") {
				return fmt.Errorf("either --city or both --temp and --humidity are required")
			}
			printWeather(cmd.OutOrStdout(), weather.NewService(nil, nil, 0).Assess(temp, humidity))
			return nil
		},
	}
	cmd.Flags().StringVar(&city, "city", "", "look up current conditions for a city")
	cmd.Flags().Float64Var(&temp, "temp", 0, "temperature in °C")
	cmd.Flags().Float64Var(&humidity, "humidity", 0, "relative humidity in percent")
	return cmd
}

func printWeather(w io.Writer, a weather.Assessment) {
	if c := a.Conditions; c != nil {
		fmt.Fprintf(w, "%s: %g°C (feels %g°C), %g%% humidity, %s\n", c.City, c.Temperature, c.FeelsLike, c.Humidity, c.Description)
	}
	level := severityColor(a.Risk.Severity)
	fmt.Fprintf(w, "%s risk (score %d)\n", level(string(a.Risk.Level)), a.Risk.Score)
	fmt.Fprintln(w, a.Advice)
}
