package console

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// RevenueSummary aggregates the marketing/revenue figures the dashboard
// charts are drawn from. Aggregation happens server-side; the console only
// plucks the figures out of the response.
type RevenueSummary struct {
	Period       string  `json:"period"`
	Total        float64 `json:"total"`
	Currency     string  `json:"currency"`
	Appointments int64   `json:"appointments"`
	NewPatients  int64   `json:"new_patients"`
}

// AnalyticsService fetches per-practitioner analytics. The endpoint is
// addressed with the session's practitioner ID, which comes from the
// unverified token; if the hint is wrong the server answers 401 or 404, so
// nothing is trusted beyond addressing.
type AnalyticsService struct {
	api   *APIClient
	store *Store
}

func NewAnalyticsService(api *APIClient, store *Store) *AnalyticsService {
	return &AnalyticsService{api: api, store: store}
}

// RevenueSummary returns the revenue figures for a period such as "30d".
func (s *AnalyticsService) RevenueSummary(ctx context.Context, period string) (*RevenueSummary, error) {
	session := s.store.Session()
	if session == nil {
		return nil, ErrNoSession
	}

	body, err := s.api.GetRaw(ctx, fmt.Sprintf("/doctors/%s/analytics?period=%s", session.ID, period))
	if err != nil {
		return nil, err
	}

	// The analytics payload varies by deployment; pick the stable fields.
	return &RevenueSummary{
		Period:       period,
		Total:        gjson.GetBytes(body, "revenue.total").Float(),
		Currency:     gjson.GetBytes(body, "revenue.currency").String(),
		Appointments: gjson.GetBytes(body, "appointments.count").Int(),
		NewPatients:  gjson.GetBytes(body, "patients.new").Int(),
	}, nil
}
