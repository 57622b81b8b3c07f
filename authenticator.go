package console

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
	"github.com/tidwall/gjson"
)

// LoginRequest is the identity exchange payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

// Auther performs the login exchange against the remote identity endpoint
// and populates the Store plus the durable slot on success.
type Auther struct {
	http      *resty.Client
	bridge    *Bridge
	loginPath string
	logger    Logger
	Debug     bool
}

var _ Authenticator = (*Auther)(nil)

// NewAuthenticator returns a new Authenticator bound to the bridge's store
// and slot.
func NewAuthenticator(cfg Config, bridge *Bridge) *Auther {
	client := resty.New().
		SetBaseURL(cfg.GetBaseURL()).
		SetTimeout(cfg.GetRequestTimeout())
	client.JSONMarshal = json.Marshal
	client.JSONUnmarshal = json.Unmarshal

	return &Auther{
		http:      client,
		bridge:    bridge,
		loginPath: cfg.GetLoginPath(),
		logger:    defLogger{},
	}
}

func (a *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// Login exchanges the email and password for a credential. A nil return
// means the session was stored; any error leaves the Store exactly as it
// was before the call. Empty fields are rejected before any network
// traffic, and a single request is made per invocation. The loading flag
// is reset on every exit path.
func (a *Auther) Login(ctx context.Context, email, password string) error {
	payload := LoginRequest{Email: email, Password: password}

	if err := payload.Validate(); err != nil {
		a.logger.Debug("Login payload rejected", "error", err)
		return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid login payload").
			WithTextCode(TextCodeLoginInvalid).
			WithCode(goerrors.CodeBadRequest)
	}

	store := a.bridge.Store()

	op := store.Begin()
	store.SetLoading(true)
	defer store.SetLoading(false)

	if a.Debug {
		a.logger.Debug("Login payload", "payload", print.MaybePrettyJSON(payload))
	}

	resp, err := a.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(a.loginPath)
	if err != nil {
		a.logger.Error("Login exchange error", "error", err)
		return goerrors.Wrap(err, ErrRequestFailed.Category, "identity exchange failed").
			WithTextCode(ErrRequestFailed.TextCode)
	}

	if !resp.IsSuccess() {
		a.logger.Warn("Login rejected by identity endpoint", "status", resp.StatusCode())
		return goerrors.New("identity endpoint rejected credentials", ErrRequestFailed.Category).
			WithTextCode(ErrRequestFailed.TextCode).
			WithMetadata(map[string]any{
				"status": resp.StatusCode(),
			})
	}

	token := gjson.GetBytes(resp.Body(), "access_token").String()
	if token == "" {
		a.logger.Error("Login response missing access_token")
		return goerrors.New("identity response missing access_token", ErrRequestFailed.Category).
			WithTextCode(ErrRequestFailed.TextCode)
	}

	claims, err := DecodeToken(token)
	if err != nil {
		a.logger.Error("Login received undecodable credential", "error", err)
		return err
	}

	if err := a.bridge.Slot().Write(ctx, token); err != nil {
		a.logger.Error("Login slot write error", "error", err)
		return goerrors.Wrap(err, goerrors.CategoryOperation, "failed to persist credential").
			WithTextCode(TextCodeCredentialVault)
	}

	session := &Session{
		ID:    claims.UserID(),
		Email: email, // trusted from the caller, not from the token
		Role:  UserRole(claims.Role()),
		Token: token,
	}

	if !store.Apply(op, session) {
		// A logout (or newer login) was applied while this exchange was in
		// flight; the stale result must not resurrect the session.
		a.logger.Warn("Login result discarded, superseded by a newer session operation")
		if clearErr := a.bridge.Slot().Clear(ctx); clearErr != nil {
			a.logger.Error("Login superseded slot clear error", "error", clearErr)
		}
		return ErrLoginSuperseded
	}

	return nil
}

// Logout clears the session and the durable slot through the bridge. It is
// idempotent and performs no network call.
func (a *Auther) Logout(ctx context.Context) error {
	return a.bridge.Logout(ctx)
}
