package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"build-promotion-service/internal/adapters/primary/http/dto"
	"build-promotion-service/internal/core/domain"
)

func (h *Handler) ListBuilds(c *gin.Context) {
	builds, active, err := h.buildSvc.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list builds failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBuildListResponse(builds, active))
}

func (h *Handler) DeleteBuild(c *gin.Context) {
	version := c.Param("version")
	if version == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidVersion.Error()})
		return
	}

	if err := h.buildSvc.Delete(c.Request.Context(), version); err != nil {
		log.WithError(err).WithField("version", version).Error("delete build failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteBuildResponse{OK: true, Deleted: version})
}

func (h *Handler) PruneBuilds(c *gin.Context) {
	var req dto.PruneBuildsRequest
	// Body is optional; an empty keep falls back to the configured retention.
	_ = c.ShouldBindJSON(&req)

	pruned, err := h.buildSvc.Prune(c.Request.Context(), req.Keep)
	if err != nil {
		log.WithError(err).Error("prune builds failed")
		mapDomainError(c, err)
		return
	}
	if pruned == nil {
		pruned = []string{}
	}

	c.JSON(http.StatusOK, dto.PruneBuildsResponse{OK: true, Pruned: pruned})
}
