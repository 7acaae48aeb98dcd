package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"build-promotion-service/internal/adapters/primary/http/dto"
	"build-promotion-service/internal/core/domain"
)

func (h *Handler) Promote(c *gin.Context) {
	var req dto.PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Version == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidVersion.Error()})
		return
	}

	result, err := h.promotionSvc.Promote(c.Request.Context(), req.Version)
	if err != nil {
		log.WithError(err).WithField("version", req.Version).Error("promote failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PromoteResponse{OK: result.OK, Message: result.Message})
}

func (h *Handler) Restart(c *gin.Context) {
	result, err := h.promotionSvc.Restart(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("restart failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RestartResponse{
		OK:      result.OK,
		Healthy: result.Healthy,
		Outcome: string(result.Outcome),
	})
}
