package dto

import (
	"build-promotion-service/internal/core/domain"
)

type BuildResponse struct {
	Version   string `json:"version"`
	Size      int64  `json:"size"`
	Timestamp int64  `json:"timestamp"`
	Active    bool   `json:"active"`
}

type BuildListResponse struct {
	Builds        []BuildResponse `json:"builds"`
	ActiveVersion string          `json:"active_version"`
}

type DeleteBuildResponse struct {
	OK      bool   `json:"ok"`
	Deleted string `json:"deleted"`
}

type PruneBuildsRequest struct {
	Keep int `json:"keep"`
}

type PruneBuildsResponse struct {
	OK     bool     `json:"ok"`
	Pruned []string `json:"pruned"`
}

func ToBuildResponse(b *domain.Build) BuildResponse {
	return BuildResponse{
		Version:   b.Version,
		Size:      b.SizeBytes,
		Timestamp: b.CreatedAt.Unix(),
		Active:    b.Active,
	}
}

func ToBuildListResponse(builds []*domain.Build, activeVersion string) BuildListResponse {
	out := BuildListResponse{
		Builds:        make([]BuildResponse, 0, len(builds)),
		ActiveVersion: activeVersion,
	}
	for _, b := range builds {
		out.Builds = append(out.Builds, ToBuildResponse(b))
	}
	return out
}
