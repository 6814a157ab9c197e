package routes

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"NoticeBoard/internal/auth"
	"NoticeBoard/internal/config"
	"NoticeBoard/internal/notice"
	"NoticeBoard/internal/registration"
	"NoticeBoard/internal/upload"
	"NoticeBoard/pkg/middleware"
)

var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(config.NewMongoDBConfig),
	fx.Provide(config.NewMongoDBClient),
	fx.Provide(config.NewResendConfig),
	fx.Provide(config.NewEmailService),
	fx.Provide(upload.NewDiskStore),
	fx.Provide(auth.NewAdminRepository),
	fx.Provide(auth.NewAdminService),
	fx.Provide(auth.NewAuthHandler),
	fx.Provide(notice.NewNoticeRepository),
	fx.Provide(notice.NewNoticeService),
	fx.Provide(notice.NewNoticeHandler),
	fx.Provide(registration.NewRegistrationRepository),
	fx.Provide(registration.NewRegistrationService),
	fx.Provide(registration.NewRegistrationHandler),
	fx.Provide(upload.NewUploadHandler),
	fx.Invoke(RegisterRoutes))

func NewEchoServer(lc fx.Lifecycle, store *upload.DiskStore) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{origin},
		AllowMethods: []string{echo.GET, echo.POST, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Static("/uploads", store.Dir)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Server running on http://localhost:" + port)
				if err := e.Start(":" + port); err != nil {
					log.Println("Server stopped:", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func RegisterRoutes(
	e *echo.Echo,
	authHandler *auth.AuthHandler,
	noticeHandler *notice.NoticeHandler,
	registrationHandler *registration.RegistrationHandler,
	uploadHandler *upload.UploadHandler,
) {
	authGroup := e.Group("/api/auth")
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/register", authHandler.Register)

	admin := e.Group("/api/admin")

	// Public: the board, single notices, and form submission.
	admin.GET("/notices", noticeHandler.ListNotices)
	admin.GET("/notices/:id", noticeHandler.GetNotice)
	admin.POST("/registrations", registrationHandler.Create)

	// Admin-only management endpoints.
	protected := admin.Group("", middleware.JWTMiddleware)
	protected.POST("/notices", noticeHandler.CreateNotice)
	protected.PATCH("/notices/:id", noticeHandler.UpdateNotice)
	protected.DELETE("/notices/:id", noticeHandler.DeleteNotice)
	protected.GET("/registrations", registrationHandler.List)
	protected.GET("/registrations/excel", registrationHandler.ExportExcel)
	protected.POST("/upload", uploadHandler.Upload)
	protected.POST("/parse-word", uploadHandler.ParseWord)
}
