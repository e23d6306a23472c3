package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hoangdieu/wedding-invitation/internal/handlers"
	"github.com/hoangdieu/wedding-invitation/internal/middleware"
	"github.com/hoangdieu/wedding-invitation/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With", "X-Subdomain"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded images are served straight from disk.
	r.Static("/static/uploads", types.UploadDir())

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws/:intro_id", middleware.AuthMiddleware(), handlers.WebSocket)

		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.Login)
			auth.POST("/refresh", handlers.Refresh)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
			auth.PUT("/me", middleware.AuthMiddleware(), handlers.UpdateMe)

			users := auth.Group("/users", middleware.AuthMiddleware(), middleware.RequireRoot())
			{
				users.POST("", handlers.CreateUser)
				users.GET("", handlers.ListUsers)
				users.GET("/:id", handlers.GetUser)
				users.PUT("/:id", handlers.UpdateUser)
				users.DELETE("/:id", handlers.DeleteUser)
			}
		}

		user := api.Group("/user", middleware.AuthMiddleware())
		{
			user.GET("/profile", handlers.Profile)
			user.GET("/subdomain", handlers.GetSubdomain)
			user.PUT("/subdomain", handlers.UpdateSubdomain)
		}

		landing := api.Group("/landing-page")
		{
			// Public subdomain access. The owning tenant is resolved
			// from the request headers.
			bySubdomain := landing.Group("/by-subdomain", middleware.RequireTenant())
			{
				bySubdomain.GET("", handlers.GetLandingPageBySubdomain)
				bySubdomain.GET("/:guest_id", handlers.GetLandingPageBySubdomainGuest)
				bySubdomain.POST("/:guest_id/confirm", handlers.ConfirmGuestBySubdomain)
				bySubdomain.GET("/:guest_id/intro", handlers.GetIntroBySubdomain)
				bySubdomain.GET("/:guest_id/date", handlers.GetDateBySubdomain)
				bySubdomain.GET("/:guest_id/header", handlers.GetHeaderBySubdomain)
				bySubdomain.GET("/:guest_id/family", handlers.GetFamilyBySubdomain)
				bySubdomain.GET("/:guest_id/invite-section", handlers.GetInviteSectionBySubdomain)
				bySubdomain.GET("/:guest_id/albums", handlers.GetAlbumsBySubdomain)
				bySubdomain.GET("/:guest_id/footer", handlers.GetFooterBySubdomain)
			}

			// Legacy public access. The guest id is the capability.
			public := landing.Group("/public")
			{
				public.GET("/:guest_id", handlers.GetPublicLandingPage)
				public.POST("/:guest_id/confirm", handlers.ConfirmPublicGuest)
				public.GET("/:guest_id/intro", handlers.GetPublicIntro)
				public.GET("/:guest_id/date", handlers.GetPublicDate)
				public.GET("/:guest_id/header", handlers.GetPublicHeader)
				public.GET("/:guest_id/family", handlers.GetPublicFamily)
				public.GET("/:guest_id/invite-section", handlers.GetPublicInviteSection)
				public.GET("/:guest_id/albums", handlers.GetPublicAlbums)
				public.GET("/:guest_id/footer", handlers.GetPublicFooter)
			}

			// Authenticated page management.
			owner := landing.Group("", middleware.AuthMiddleware())
			{
				owner.POST("/intro", handlers.CreateIntro)
				owner.GET("/intro", handlers.GetMyIntro)
				owner.GET("/intros", handlers.GetMyIntros)
				owner.PUT("/intro", handlers.UpdateIntro)
				owner.GET("/complete", handlers.GetCompleteLandingPage)

				owner.GET("/date-organization", handlers.GetMyDateOrganization)
				owner.POST("/date-organization", handlers.UpsertDateOrganization)
				owner.DELETE("/date-organization", handlers.DeleteDateOrganization)

				owner.POST("/images/upload", handlers.UploadImage)
				owner.POST("/images", handlers.CreateImage)
				owner.GET("/images", handlers.ListImages)
				owner.DELETE("/images/:image_id", handlers.DeleteImage)

				owner.GET("/header", handlers.GetMyHeader)
				owner.POST("/header", handlers.UpsertHeader)
				owner.DELETE("/header", handlers.DeleteHeader)

				owner.GET("/family", handlers.GetMyFamily)
				owner.POST("/family", handlers.UpsertFamily)
				owner.DELETE("/family", handlers.DeleteFamily)

				owner.GET("/invite-section", handlers.GetMyInviteSection)
				owner.POST("/invite-section", handlers.UpsertInviteSection)
				owner.DELETE("/invite-section", handlers.DeleteInviteSection)

				owner.GET("/footer", handlers.GetMyFooter)
				owner.POST("/footer", handlers.UpsertFooter)
				owner.DELETE("/footer", handlers.DeleteFooter)

				owner.POST("/album-sessions", handlers.CreateAlbumSession)
				owner.GET("/album-sessions", handlers.ListAlbumSessions)
				owner.PUT("/album-sessions/:session_id", handlers.UpdateAlbumSession)
				owner.DELETE("/album-sessions/:session_id", handlers.DeleteAlbumSession)
				owner.POST("/album-sessions/:session_id/images", handlers.AddAlbumImage)
				owner.PUT("/album-sessions/:session_id/reorder", handlers.ReorderAlbumImages)
				owner.DELETE("/album-images/:image_id", handlers.DeleteAlbumImage)

				owner.POST("/guests", handlers.CreateGuest)
				owner.GET("/guests", handlers.ListGuests)
				owner.GET("/guests/first", handlers.GetFirstGuest)
				owner.GET("/guests/stats", handlers.GetGuestStats)
				owner.PUT("/guests/:guest_id", handlers.UpdateGuest)
				owner.DELETE("/guests/:guest_id", handlers.DeleteGuest)
			}
		}
	}

	return r
}
