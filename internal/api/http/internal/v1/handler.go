package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/innovators-conclave/backend/internal/config"
	"github.com/innovators-conclave/backend/internal/service"
	"github.com/innovators-conclave/backend/pkg/auth"
)

// @title Conclave Backend API
// @version 1.0
// @description Registration and email backend for the Global Innovators Conclave 2026 site

// @BasePath /

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	h.initAuthRoutes(api)
	h.initEmailRoutes(api)
}
