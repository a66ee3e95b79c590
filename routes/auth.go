package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/stone-software/pizza-house/auth"
	"github.com/stone-software/pizza-house/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", auth.CreateGuestSession(db))

		adminAuth := authGroup.Group("/admin")
		{
			adminAuth.POST("/login", auth.AdminLogin(db))
			adminAuth.POST("/logout", auth.AdminLogout())
			adminAuth.GET("/session", middleware.ValidateAdminToken, auth.AdminSession(db))
		}
	}
}
