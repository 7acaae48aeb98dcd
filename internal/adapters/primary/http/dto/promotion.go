package dto

type PromoteRequest struct {
	Version string `json:"version"`
}

type PromoteResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type RestartResponse struct {
	OK      bool   `json:"ok"`
	Healthy bool   `json:"healthy"`
	Outcome string `json:"outcome"`
}
