package handlers

import (
	"build-promotion-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	buildSvc     *services.BuildService
	promotionSvc *services.PromotionService
	statusSvc    *services.StatusService
	waitlistSvc  *services.WaitlistService
}

func New(
	buildSvc *services.BuildService,
	promotionSvc *services.PromotionService,
	statusSvc *services.StatusService,
	waitlistSvc *services.WaitlistService,
) *Handler {
	return &Handler{
		buildSvc:     buildSvc,
		promotionSvc: promotionSvc,
		statusSvc:    statusSvc,
		waitlistSvc:  waitlistSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Builds
	r.GET("/builds", h.ListBuilds)
	r.DELETE("/builds/:version", h.DeleteBuild)
	r.POST("/builds/prune", h.PruneBuilds)

	// Promotion
	r.POST("/promote", h.Promote)
	r.POST("/restart", h.Restart)

	// Status
	r.GET("/status", h.GetStatus)

	// Waitlist
	r.POST("/waitlist", h.WaitlistSignup)
}
