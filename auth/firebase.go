package auth

import (
	"context"
	"errors"
	"log"
	"os"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *fbauth.Client
	projectID    string
)

// Init sets up the Firebase app and auth client from env. Called once from
// main before routes are served.
func Init(ctx context.Context) error {
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		return errors.New("FIREBASE_CREDENTIALS_JSON must be set")
	}

	projectID = os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		return errors.New("FIREBASE_PROJECT_ID must be set")
	}

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	config := &firebase.Config{ProjectID: projectID}

	var err error
	firebaseApp, err = firebase.NewApp(ctx, config, opt)
	if err != nil {
		return err
	}

	firebaseAuth, err = firebaseApp.Auth(ctx)
	if err != nil {
		return err
	}

	log.Println("✅ Firebase auth client initialized")
	return nil
}

// verifyIDToken checks the provider ID token (including revocation) and the
// token audience.
func verifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error) {
	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return nil, err
	}
	if token.Audience != projectID {
		return nil, errors.New("invalid token audience")
	}
	return token, nil
}

// RevokeSessions forces provider sign-out for a user by revoking all of
// their refresh tokens. Used when an account is deactivated.
func RevokeSessions(ctx context.Context, uid string) error {
	if firebaseAuth == nil {
		return errors.New("firebase auth not initialized")
	}
	return firebaseAuth.RevokeRefreshTokens(ctx, uid)
}
