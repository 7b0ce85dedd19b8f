package auth

import "strings"

// friendlyMessages maps identity-provider error codes to fixed,
// human-readable messages. Unmapped codes fall back to the raw message.
var friendlyMessages = map[string]string{
	"ID_TOKEN_EXPIRED":            "Your session has expired, please sign in again",
	"ID_TOKEN_REVOKED":            "Your session was revoked, please sign in again",
	"INVALID_ID_TOKEN":            "Sign-in could not be verified, please try again",
	"USER_DISABLED":               "Your account has been deactivated",
	"USER_NOT_FOUND":              "No account exists for this sign-in",
	"EMAIL_NOT_FOUND":             "No account exists for this email",
	"INVALID_PASSWORD":            "Incorrect email or password",
	"EMAIL_EXISTS":                "An account with this email already exists",
	"TOO_MANY_ATTEMPTS_TRY_LATER": "Too many attempts, please try again later",
	"CERTIFICATE_FETCH_FAILED":    "Sign-in is temporarily unavailable, please try again",
}

// FriendlyAuthMessage translates a provider error into display text. Provider
// errors embed the code in the message body, so matching is by substring.
func FriendlyAuthMessage(err error) string {
	if err == nil {
		return ""
	}
	raw := err.Error()
	for code, msg := range friendlyMessages {
		if strings.Contains(strings.ToUpper(raw), code) {
			return msg
		}
	}
	return raw
}
