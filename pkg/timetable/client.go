package timetable

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is where the timetable service listens unless configured otherwise.
const DefaultBaseURL = "http://localhost:8000"

// Client handles HTTP requests to the timetable service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the timetable service at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchDay retrieves the lessons for a day (e.g. "monday") and keeps only
// those relevant to the given profile. The request is made exactly once.
func (c *Client) FetchDay(ctx context.Context, day string, profile Profile) ([]Lesson, error) {
	lessons, err := c.fetchRaw(ctx, day)
	if err != nil {
		return nil, err
	}
	return Filter(lessons, profile), nil
}

func (c *Client) fetchRaw(ctx context.Context, day string) ([]Lesson, error) {
	reqURL := fmt.Sprintf("%s/timetable/%s", c.baseURL, url.PathEscape(day))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &TransportError{Day: day, URL: reqURL, Err: err}
	}

	req.Header.Set("User-Agent", "timetable/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Day: day, URL: reqURL, Err: fmt.Errorf("failed to fetch timetable: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{
			Day:        day,
			URL:        reqURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status code: %d", resp.StatusCode),
		}
	}

	var lessons []Lesson
	if err := json.NewDecoder(resp.Body).Decode(&lessons); err != nil {
		return nil, &TransportError{Day: day, URL: reqURL, Err: fmt.Errorf("failed to decode JSON response: %w", err)}
	}

	return lessons, nil
}
