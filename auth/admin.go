package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stone-software/pizza-house/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const adminSessionTTL = 24 * time.Hour

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/admin/login
func AdminLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}

		var admin models.Admin
		if err := db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Невірний email або пароль"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Невірний email або пароль"})
			return
		}

		token, err := issueAdminToken(admin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"admin": gin.H{"id": admin.ID, "email": admin.Email, "name": admin.Name},
		})
	}
}

// POST /auth/admin/logout
// Tokens are stateless, so logout only tells the client to drop its copy.
func AdminLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GET /auth/admin/session
// Requires the admin token middleware, which stores the claims.
func AdminSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := c.Get("admin_email")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
			return
		}

		var admin models.Admin
		if err := db.Where("email = ?", email).First(&admin).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"admin": gin.H{"id": admin.ID, "email": admin.Email, "name": admin.Name},
		})
	}
}

func issueAdminToken(admin models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"email":    admin.Email,
		"role":     "admin",
		"exp":      time.Now().Add(adminSessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// HashPassword wraps bcrypt for admin account provisioning.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
