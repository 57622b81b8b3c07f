package console

import "context"

// Portfolio is the practitioner's public profile content.
type Portfolio struct {
	DisplayName string   `json:"display_name"`
	Specialty   string   `json:"specialty"`
	Biography   string   `json:"biography"`
	Services    []string `json:"services,omitempty"`
	AvatarURL   string   `json:"avatar_url,omitempty"`
}

// PortfolioService reads and writes the profile content. The server scopes
// the record to the session token; no ID is sent from the client.
type PortfolioService struct {
	api *APIClient
}

func NewPortfolioService(api *APIClient) *PortfolioService {
	return &PortfolioService{api: api}
}

func (s *PortfolioService) Get(ctx context.Context) (*Portfolio, error) {
	portfolio := &Portfolio{}
	if err := s.api.Get(ctx, "/portfolio", portfolio); err != nil {
		return nil, err
	}
	return portfolio, nil
}

func (s *PortfolioService) Update(ctx context.Context, portfolio *Portfolio) error {
	return s.api.Put(ctx, "/portfolio", portfolio, nil)
}
