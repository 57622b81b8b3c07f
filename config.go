package console

import "time"

var _ Config = (*ConfigObject)(nil)

// ConfigObject is the concrete Config with sensible defaults for every
// zero-value field. Hosts that manage configuration elsewhere can implement
// Config directly.
type ConfigObject struct {
	BaseURL        string        `json:"base_url"`
	LoginPath      string        `json:"login_path"`
	AuthScheme     string        `json:"auth_scheme"`
	LoginRoute     string        `json:"login_route"`
	LandingRoute   string        `json:"landing_route"`
	CredentialKey  string        `json:"credential_key"`
	RequestTimeout time.Duration `json:"request_timeout"`
	PollInterval   time.Duration `json:"poll_interval"`
}

// DefaultConfig returns a ConfigObject pointed at the given API base URL.
func DefaultConfig(baseURL string) *ConfigObject {
	return &ConfigObject{BaseURL: baseURL}
}

func (c *ConfigObject) GetBaseURL() string {
	return c.BaseURL
}

func (c *ConfigObject) GetLoginPath() string {
	if c.LoginPath == "" {
		return "/auth/login"
	}
	return c.LoginPath
}

func (c *ConfigObject) GetAuthScheme() string {
	if c.AuthScheme == "" {
		return "Bearer"
	}
	return c.AuthScheme
}

func (c *ConfigObject) GetLoginRoute() string {
	if c.LoginRoute == "" {
		return "/login"
	}
	return c.LoginRoute
}

func (c *ConfigObject) GetLandingRoute() string {
	if c.LandingRoute == "" {
		return "/dashboard"
	}
	return c.LandingRoute
}

func (c *ConfigObject) GetCredentialKey() string {
	if c.CredentialKey == "" {
		return "auth_token"
	}
	return c.CredentialKey
}

func (c *ConfigObject) GetRequestTimeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return 15 * time.Second
	}
	return c.RequestTimeout
}

func (c *ConfigObject) GetPollInterval() time.Duration {
	if c.PollInterval <= 0 {
		return time.Minute
	}
	return c.PollInterval
}
