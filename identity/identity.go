// Package identity talks to the Google Identity Toolkit REST endpoints that
// back Firebase Authentication: credential signup/signin, password reset and
// verification mail, and the securetoken refresh exchange.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors for the provider failures the handlers care about. The
// toolkit reports machine codes, so no free-text matching is needed.
var (
	ErrEmailExists        = errors.New("identity: email already registered")
	ErrInvalidCredentials = errors.New("identity: invalid email or password")
	ErrUserNotFound       = errors.New("identity: no account for email")
)

// Session is what a successful signup or signin yields.
type Session struct {
	UID          string
	IDToken      string
	RefreshToken string
}

// Tokens is the result of a refresh-token exchange.
type Tokens struct {
	IDToken      string
	RefreshToken string
}

// API is the subset of provider operations the controllers use.
type API interface {
	SignUp(ctx context.Context, email, password string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SendPasswordReset(ctx context.Context, email string) error
	SendEmailVerification(ctx context.Context, idToken string) error
	Refresh(ctx context.Context, refreshToken string) (*Tokens, error)
}

const (
	toolkitURL     = "https://identitytoolkit.googleapis.com/v1"
	secureTokenURL = "https://securetoken.googleapis.com/v1/token"
)

type Client struct {
	apiKey string
	http   *http.Client

	// Overridable in tests.
	toolkitBase string
	tokenURL    string
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:      apiKey,
		http:        &http.Client{Timeout: 15 * time.Second},
		toolkitBase: toolkitURL,
		tokenURL:    secureTokenURL,
	}
}

type sessionResponse struct {
	LocalID      string `json:"localId"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
}

func (c *Client) SignUp(ctx context.Context, email, password string) (*Session, error) {
	var resp sessionResponse
	err := c.post(ctx, "accounts:signUp", map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &Session{UID: resp.LocalID, IDToken: resp.IDToken, RefreshToken: resp.RefreshToken}, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var resp sessionResponse
	err := c.post(ctx, "accounts:signInWithPassword", map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &Session{UID: resp.LocalID, IDToken: resp.IDToken, RefreshToken: resp.RefreshToken}, nil
}

func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	return c.post(ctx, "accounts:sendOobCode", map[string]interface{}{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}, nil)
}

func (c *Client) SendEmailVerification(ctx context.Context, idToken string) error {
	return c.post(ctx, "accounts:sendOobCode", map[string]interface{}{
		"requestType": "VERIFY_EMAIL",
		"idToken":     idToken,
	}, nil)
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Tokens, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.tokenURL+"?key="+url.QueryEscape(c.apiKey),
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, decodeError(res)
	}

	var body struct {
		IDToken      string `json:"id_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &Tokens{IDToken: body.IDToken, RefreshToken: body.RefreshToken}, nil
}

func (c *Client) post(ctx context.Context, action string, payload interface{}, out interface{}) error {
	buf, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/%s?key=%s", c.toolkitBase, action, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return decodeError(res)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func decodeError(res *http.Response) error {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.NewDecoder(res.Body).Decode(&body)

	// Codes can carry suffixes like "TOO_MANY_ATTEMPTS_TRY_LATER : ...".
	code := body.Error.Message
	if i := strings.IndexAny(code, " :"); i > 0 {
		code = code[:i]
	}

	switch code {
	case "EMAIL_EXISTS":
		return ErrEmailExists
	case "INVALID_LOGIN_CREDENTIALS", "INVALID_PASSWORD", "INVALID_EMAIL":
		return ErrInvalidCredentials
	case "EMAIL_NOT_FOUND":
		return ErrUserNotFound
	}
	return fmt.Errorf("identity: %s (HTTP %d)", body.Error.Message, res.StatusCode)
}

// Stale reports whether an id token is expired or about to expire. The
// claims are read without signature verification; the token is only being
// inspected, not trusted.
func Stale(idToken string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return time.Until(exp.Time) < time.Minute
}
