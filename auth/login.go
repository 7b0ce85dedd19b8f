package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/intronerd12/Nourishy-sub000/models"
)

type loginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

type registerRequest struct {
	IDToken string `json:"idToken" binding:"required"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
}

// POST /auth/login
//
// Verifies the provider ID token, fetches (or creates on first sign-in) the
// backend profile, and issues a session JWT. A deactivated account gets 403
// and its provider sessions are revoked so the client is forced to sign out.
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		token, err := verifyIDToken(c.Request.Context(), req.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": FriendlyAuthMessage(err)})
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		verified, _ := token.Claims["email_verified"].(bool)
		uid := token.UID

		var user models.User
		err = db.Preload("Cart.Items").Where("id = ?", uid).First(&user).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			// First sign-in through the provider → create the profile
			user = models.User{
				ID:              uid,
				Email:           email,
				Name:            name,
				Avatar:          picture,
				Provider:        token.Firebase.SignInProvider,
				Role:            models.RoleUser,
				IsActive:        true,
				IsEmailVerified: verified,
				Cart:            models.Cart{UserID: uid},
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
			log.Printf("✅ New user registered via login: %s", email)
		} else if err == nil {
			if !user.IsActive {
				if revokeErr := RevokeSessions(c.Request.Context(), uid); revokeErr != nil {
					log.Printf("❌ Failed to revoke sessions for %s: %v", uid, revokeErr)
				}
				c.JSON(http.StatusForbidden, gin.H{"error": friendlyMessages["USER_DISABLED"]})
				return
			}
			// Sync profile fields owned by the provider
			if err := db.Model(&user).Updates(map[string]interface{}{
				"name":              name,
				"avatar":            picture,
				"is_email_verified": verified,
			}).Error; err != nil {
				log.Printf("❌ Failed to sync profile for %s: %v", uid, err)
			}
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    user,
			"token":   IssueJWT(user),
		})
	}
}

// POST /auth/register
//
// Explicit registration: verifies the token, creates the profile with the
// supplied fields, 409 if the account already exists.
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		token, err := verifyIDToken(c.Request.Context(), req.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": FriendlyAuthMessage(err)})
			return
		}

		email, _ := token.Claims["email"].(string)
		picture, _ := token.Claims["picture"].(string)
		verified, _ := token.Claims["email_verified"].(bool)
		uid := token.UID

		name := req.Name
		if name == "" {
			name, _ = token.Claims["name"].(string)
		}

		var existing models.User
		err = db.Where("id = ?", uid).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Account already exists, please log in"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		user := models.User{
			ID:              uid,
			Email:           email,
			Name:            name,
			Phone:           req.Phone,
			Avatar:          picture,
			Provider:        token.Firebase.SignInProvider,
			Role:            models.RoleUser,
			IsActive:        true,
			IsEmailVerified: verified,
			Cart:            models.Cart{UserID: uid},
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}
		log.Printf("✅ New user registered: %s", email)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Registration successful",
			"user":    user,
			"token":   IssueJWT(user),
		})
	}
}
