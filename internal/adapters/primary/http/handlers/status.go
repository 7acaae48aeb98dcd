package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"build-promotion-service/internal/adapters/primary/http/dto"
)

func (h *Handler) GetStatus(c *gin.Context) {
	status, err := h.statusSvc.Status(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("status query failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatusResponse(status))
}
