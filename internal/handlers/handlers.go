package handlers

import (
	"StudyArchive/internal/config"
	"StudyArchive/internal/middleware"
	"StudyArchive/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	itemService *service.ItemService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	itemHandler := NewItemHandler(itemService, logger, config)

	// Auth routes
	r.Post("/api/auth/register", userHandler.Register)
	r.Post("/api/auth/login", userHandler.Login)
	r.Get("/api/auth/check-username/{username}", userHandler.CheckUsername)
	r.Get("/api/auth/check-email/{email}", userHandler.CheckEmail)

	// Archive routes
	r.Post("/api/archive-items", itemHandler.Create)
	r.Get("/api/archive-items", itemHandler.List)
	r.Get("/api/archive-items/{id}", itemHandler.Get)
	r.Get("/api/archive-items/{id}/file", itemHandler.GetFile)
	r.Put("/api/archive-items/{id}", itemHandler.Update)
	r.Delete("/api/archive-items/{id}", itemHandler.Delete)

	return &Handler{Router: r}
}
