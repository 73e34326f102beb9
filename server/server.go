package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stakegulf-cms/config"
	"stakegulf-cms/handlers"
	"stakegulf-cms/helper"
	"stakegulf-cms/middleware"
	"stakegulf-cms/models"
	"stakegulf-cms/repositories"
	"stakegulf-cms/services"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	Engine   *gin.Engine
	Activity services.ActivityService

	cfg config.Config
	log *slog.Logger
}

// New wires repositories, services and handlers onto a gin engine.
func New(cfg config.Config, db *gorm.DB, log *slog.Logger, opts ...services.ActivityOption) *Server {
	gin.SetMode(cfg.GinMode)
	h := helper.NewHTTPHelper(log)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	platformRepo := repositories.NewPlatformRepository(db)
	guideRepo := repositories.NewGuideRepository(db)
	newsRepo := repositories.NewNewsRepository(db)
	pageRepo := repositories.NewPageRepository(db)
	topListRepo := repositories.NewTopListRepository(db)
	settingRepo := repositories.NewSettingRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	// Initialize services
	hasher := services.NewBcryptHasher()
	tokens := services.NewJWTTokenService(cfg.JWT)
	activityService := services.NewActivityService(activityRepo, userRepo, notificationRepo, log, opts...)
	authService := services.NewAuthService(userRepo, tokens, hasher, activityService)
	userService := services.NewUserService(userRepo, hasher, activityService)
	platformService := services.NewPlatformService(platformRepo, activityService)
	guideService := services.NewGuideService(guideRepo, activityService)
	newsService := services.NewNewsService(newsRepo, activityService)
	pageService := services.NewPageService(pageRepo, activityService)
	topListService := services.NewTopListService(topListRepo, platformRepo, activityService)
	settingService := services.NewSettingService(settingRepo, activityService)
	notificationService := services.NewNotificationService(notificationRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, h)
	userHandler := handlers.NewUserHandler(userService, h)
	platformHandler := handlers.NewPlatformHandler(platformService, h)
	guideHandler := handlers.NewGuideHandler(guideService, h)
	newsHandler := handlers.NewNewsHandler(newsService, h)
	pageHandler := handlers.NewPageHandler(pageService, h)
	topListHandler := handlers.NewTopListHandler(topListService, h)
	settingHandler := handlers.NewSettingHandler(settingService, h)
	notificationHandler := handlers.NewNotificationHandler(notificationService, activityService, h)
	healthHandler := handlers.NewHealthHandler(cfg.Env)

	router := gin.New()
	router.Use(middleware.Recovery(log, h), middleware.RequestLogger(log), middleware.CORS())

	authenticate := middleware.AuthMiddleware(authService, h)
	adminOnly := middleware.RequireRole(h, models.RoleAdmin, models.RoleSuperadmin)
	superadminOnly := middleware.RequireRole(h, models.RoleSuperadmin)

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authenticate, authHandler.GetProfile)
			auth.PUT("/me", authenticate, authHandler.UpdateProfile)
			auth.PUT("/password", authenticate, authHandler.ChangePassword)
			auth.POST("/logout", authenticate, authHandler.Logout)
		}

		users := api.Group("/users", authenticate)
		{
			users.GET("/roles/list", adminOnly, userHandler.GetRoles)
			users.GET("", adminOnly, userHandler.GetUsers)
			users.GET("/:id", adminOnly, userHandler.GetUser)
			users.POST("", adminOnly, userHandler.CreateUser)
			users.PUT("/:id", adminOnly, userHandler.UpdateUser)
			users.DELETE("/:id", superadminOnly, userHandler.DeleteUser)
		}

		platforms := api.Group("/platforms")
		{
			platforms.GET("", platformHandler.GetPlatforms)
			platforms.GET("/:identifier", platformHandler.GetPlatform)
			platforms.POST("", authenticate, platformHandler.CreatePlatform)
			platforms.PUT("/:id", authenticate, platformHandler.UpdatePlatform)
			platforms.DELETE("/:id", authenticate, adminOnly, platformHandler.DeletePlatform)
		}

		guides := api.Group("/guides")
		{
			guides.GET("", guideHandler.GetGuides)
			guides.GET("/:identifier", guideHandler.GetGuide)
			guides.POST("", authenticate, guideHandler.CreateGuide)
			guides.PUT("/:id", authenticate, guideHandler.UpdateGuide)
			guides.DELETE("/:id", authenticate, adminOnly, guideHandler.DeleteGuide)
		}

		news := api.Group("/news")
		{
			news.GET("", newsHandler.GetNews)
			news.GET("/:identifier", newsHandler.GetNewsItem)
			news.POST("", authenticate, newsHandler.CreateNewsItem)
			news.PUT("/:id", authenticate, newsHandler.UpdateNewsItem)
			news.DELETE("/:id", authenticate, adminOnly, newsHandler.DeleteNewsItem)
		}

		editors := middleware.RequireRole(h, models.RoleAdmin, models.RoleSuperadmin, models.RoleEditor)
		pages := api.Group("/pages")
		{
			pages.GET("", pageHandler.GetPages)
			pages.GET("/:identifier", pageHandler.GetPage)
			pages.POST("", authenticate, editors, pageHandler.CreatePage)
			pages.PUT("/:id", authenticate, editors, pageHandler.UpdatePage)
			pages.DELETE("/:id", authenticate, adminOnly, pageHandler.DeletePage)
		}

		topLists := api.Group("/top-lists")
		{
			topLists.GET("", topListHandler.GetTopLists)
			topLists.GET("/:identifier", topListHandler.GetTopList)
			topLists.POST("", authenticate, topListHandler.CreateTopList)
			topLists.PUT("/:id", authenticate, topListHandler.UpdateTopList)
			topLists.DELETE("/:id", authenticate, adminOnly, topListHandler.DeleteTopList)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", settingHandler.GetSettings)
			settings.GET("/fonts", settingHandler.GetFonts)
			settings.GET("/all", authenticate, superadminOnly, settingHandler.GetAllSettings)
			settings.PUT("/:key", authenticate, superadminOnly, settingHandler.UpdateSetting)
			settings.POST("", authenticate, superadminOnly, settingHandler.CreateSetting)
		}

		notifications := api.Group("/notifications", authenticate)
		{
			notifications.GET("", notificationHandler.GetNotifications)
			notifications.GET("/activity", notificationHandler.GetActivity)
			notifications.PUT("/read-all", notificationHandler.MarkAllRead)
			notifications.PUT("/:id/read", notificationHandler.MarkRead)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		h.SendNotFoundError(c, "Not Found", h.EmptyJsonMap())
	})

	return &Server{Engine: router, Activity: activityService, cfg: cfg, log: log}
}

// Run serves until ctx is cancelled, then drains in-flight requests and
// pending activity writes.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "port", s.cfg.Port, "env", s.cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.Activity.Wait()
	return err
}
