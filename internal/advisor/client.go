// Package advisor talks to the remote ChronoDesk backend for license
// activation and AI advisor queries. It is the only part of the app
// that performs network I/O; the analytics core never touches it.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/chronodesk/chronodesk/internal/models"
)

// DefaultBaseURL is the hosted backend
const DefaultBaseURL = "https://api.chronodesk.app"

// Service is what command handlers depend on, so the remote backend can
// be swapped out in tests
type Service interface {
	ActivateLicense(ctx context.Context, licenseKey, deviceID, deviceName string) (models.Tier, error)
	Ask(ctx context.Context, licenseKey, deviceID, question string, context AIContext) (*AIResponse, error)
}

// Client is the HTTP implementation of Service
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client with a bounded request timeout
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// AIContext is the analytics snapshot sent along with a question
type AIContext struct {
	TodayHours    float64 `json:"today_hours"`
	TodayPay      float64 `json:"today_pay"`
	TodaySessions int     `json:"today_sessions"`

	PeriodTotalHours     float64 `json:"period_total_hours"`
	PeriodTotalSessions  int     `json:"period_total_sessions"`
	PeriodTotalPay       float64 `json:"period_total_pay"`
	PeriodAvgSession     float64 `json:"period_avg_session"`
	PeriodLongestSession float64 `json:"period_longest_session"`

	AvgWeeklyIncome float64 `json:"avg_weekly_income"`
	AvgWeeklyHours  float64 `json:"avg_weekly_hours"`

	GoalsCount   int    `json:"goals_count"`
	GoalsSummary string `json:"goals_summary"`
}

// AIResponse is the advisor's answer plus remaining quota
type AIResponse struct {
	Content          string `json:"content"`
	RemainingQueries int    `json:"remaining_queries"`
	DailyLimit       int    `json:"daily_limit"`
}

type apiEnvelope struct {
	Error string `json:"error"`
	Tier  string `json:"tier"`
	Data  struct {
		Response string `json:"response"`
		Usage    struct {
			Remaining int `json:"remaining"`
			Limit     int `json:"limit"`
		} `json:"usage"`
	} `json:"data"`
}

// ActivateLicense validates a key with the backend and returns the tier
func (c *Client) ActivateLicense(ctx context.Context, licenseKey, deviceID, deviceName string) (models.Tier, error) {
	body := map[string]string{
		"license_key": licenseKey,
		"device_id":   deviceID,
		"device_name": deviceName,
	}
	env, err := c.post(ctx, "/api/license/activate", body)
	if err != nil {
		return "", err
	}
	return models.ParseTier(env.Tier), nil
}

// Ask sends an advisor question with its analytics context
func (c *Client) Ask(ctx context.Context, licenseKey, deviceID, question string, aiCtx AIContext) (*AIResponse, error) {
	body := map[string]interface{}{
		"license_key": licenseKey,
		"device_id":   deviceID,
		"question":    question,
		"context":     aiCtx,
	}
	env, err := c.post(ctx, "/api/ai/chat", body)
	if err != nil {
		return nil, err
	}
	content := env.Data.Response
	if content == "" {
		content = "Sorry, I couldn't generate a response."
	}
	limit := env.Data.Usage.Limit
	if limit == 0 {
		limit = 10
	}
	return &AIResponse{
		Content:          content,
		RemainingQueries: env.Data.Usage.Remaining,
		DailyLimit:       limit,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}) (*apiEnvelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chronodesk backend: %w", err)
	}
	defer resp.Body.Close()

	var env apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if env.Error != "" {
			return nil, fmt.Errorf("%s", env.Error)
		}
		return nil, fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	return &env, nil
}
