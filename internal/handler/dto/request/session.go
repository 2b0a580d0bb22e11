package request

type SessionRequest struct {
	UserID string `json:"userId" binding:"omitempty,uuid"`
	Email  string `json:"email" binding:"required,email"`
}
