package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"build-promotion-service/internal/adapters/primary/http/dto"
	"build-promotion-service/internal/core/domain"
)

func (h *Handler) WaitlistSignup(c *gin.Context) {
	var req dto.WaitlistRequest
	// Accept JSON and form posts; the public landing page submits a form.
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidEmail.Error()})
		return
	}

	if _, err := h.waitlistSvc.Signup(c.Request.Context(), req.Email); err != nil {
		log.WithError(err).Warn("waitlist signup failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.WaitlistResponse{OK: true})
}
