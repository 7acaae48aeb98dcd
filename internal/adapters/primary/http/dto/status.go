package dto

import (
	"build-promotion-service/internal/core/domain"
	"build-promotion-service/internal/core/services"
)

type ServiceProcessResponse struct {
	Name   string `json:"name"`
	State  string `json:"state"`
	PID    string `json:"pid,omitempty"`
	Uptime string `json:"uptime,omitempty"`
}

type StatusResponse struct {
	ActiveVersion string                   `json:"active_version"`
	Healthy       bool                     `json:"healthy"`
	UptimeSecs    int64                    `json:"uptime_secs"`
	BuildCount    int                      `json:"build_count"`
	Services      []ServiceProcessResponse `json:"services"`
}

func ToStatusResponse(s *services.Status) StatusResponse {
	out := StatusResponse{
		ActiveVersion: s.ActiveVersion,
		Healthy:       s.Healthy,
		UptimeSecs:    s.UptimeSecs,
		BuildCount:    s.BuildCount,
		Services:      make([]ServiceProcessResponse, 0, len(s.Services)),
	}
	for _, p := range s.Services {
		out.Services = append(out.Services, toServiceProcessResponse(p))
	}
	return out
}

func toServiceProcessResponse(p domain.ServiceProcess) ServiceProcessResponse {
	return ServiceProcessResponse{
		Name:   p.Name,
		State:  p.State,
		PID:    p.PID,
		Uptime: p.Uptime,
	}
}
