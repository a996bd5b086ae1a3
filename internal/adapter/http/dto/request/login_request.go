package request

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}
