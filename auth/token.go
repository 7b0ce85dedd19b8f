package auth

import (
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/intronerd12/Nourishy-sub000/models"
)

// IssueJWT mints the session token attached as "Authorization: Bearer" to
// every authenticated call.
func IssueJWT(user models.User) string {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"name":    user.Name,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		log.Printf("❌ Failed to sign JWT: %v", err)
		return ""
	}
	return signed
}
