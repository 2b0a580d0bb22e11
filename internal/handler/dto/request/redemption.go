package request

type ValidateOrderRequest struct {
	OrderReference string `json:"orderId" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
}

type ScratchRequest struct {
	UserID         string `json:"userId" binding:"required,uuid"`
	Email          string `json:"email" binding:"omitempty,email"`
	OrderReference string `json:"orderId" binding:"required"`
}
