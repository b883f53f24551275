// Package authn wraps the Firebase Admin SDK: app initialization from
// service-account credentials, plus the id-token check used to sync a
// user's stored email_verified flag.
package authn

import (
	"context"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"firebase.google.com/go/db"
	"google.golang.org/api/option"

	"github.com/SumanKr7/CosmoXclub/config"
)

// Verifier answers whether the account behind a session id token has a
// verified email address.
type Verifier interface {
	EmailVerified(ctx context.Context, idToken string) bool
}

// Clients bundles the admin Auth and Realtime Database handles.
type Clients struct {
	Auth *auth.Client
	DB   *db.Client
}

// New initializes the Firebase app with the JSON credentials blob from the
// config (no key file on disk).
func New(ctx context.Context, cfg *config.Config) (*Clients, error) {
	opt := option.WithCredentialsJSON([]byte(cfg.FirebaseCredentialsJSON))
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:   cfg.FirebaseProjectID,
		DatabaseURL: cfg.FirebaseDatabaseURL,
	}, opt)
	if err != nil {
		return nil, err
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	dbClient, err := app.Database(ctx)
	if err != nil {
		return nil, err
	}
	return &Clients{Auth: authClient, DB: dbClient}, nil
}

// EmailVerified verifies the id token and looks up the user record. Any
// failure counts as not verified; the flag only ever flips on solid proof.
func (c *Clients) EmailVerified(ctx context.Context, idToken string) bool {
	if idToken == "" {
		return false
	}
	token, err := c.Auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return false
	}
	rec, err := c.Auth.GetUser(ctx, token.UID)
	if err != nil {
		return false
	}
	return rec.EmailVerified
}
