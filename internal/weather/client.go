package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Conditions is the subset of a provider response the service uses.
type Conditions struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	Humidity    float64 `json:"humidity"`
	Description string  `json:"description"`
	WindSpeed   float64 `json:"windSpeed"`
}

// Provider fetches current conditions for a city.
type Provider interface {
	Current(ctx context.Context, city string) (Conditions, error)
}

// Client talks to the OpenWeatherMap current-weather endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// NewClient builds a client. An empty key yields ErrNotConfigured.
func NewClient(apiKey, baseURL string, timeout time.Duration) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("weather base url is required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) Current(ctx context.Context, city string) (Conditions, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return Conditions{}, fmt.Errorf("weather base url: %w", err)
	}
	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Conditions{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return Conditions{}, fmt.Errorf("weather request timeout: %w", err)
		}
		return Conditions{}, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Conditions{}, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return Conditions{}, ErrCityNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Conditions{}, fmt.Errorf("weather provider status %d", resp.StatusCode)
	}

	var parsed currentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Conditions{}, fmt.Errorf("weather response parse: %w", err)
	}
	out := Conditions{
		City:        parsed.Name,
		Temperature: parsed.Main.Temp,
		FeelsLike:   parsed.Main.FeelsLike,
		Humidity:    parsed.Main.Humidity,
		WindSpeed:   parsed.Wind.Speed,
	}
	if len(parsed.Weather) > 0 {
		out.Description = parsed.Weather[0].Description
	}
	if out.City == "" {
		out.City = city
	}
	return out, nil
}

var _ Provider = (*Client)(nil)
