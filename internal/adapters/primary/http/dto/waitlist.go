package dto

type WaitlistRequest struct {
	Email string `json:"email" form:"email"`
}

type WaitlistResponse struct {
	OK bool `json:"ok"`
}
