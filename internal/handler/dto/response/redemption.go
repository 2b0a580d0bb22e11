package response

import (
	"fmt"

	"scratch-win/internal/domain/prize"
	"scratch-win/internal/usecase/commands"
	"scratch-win/internal/usecase/queries"
)

type ValidatedOrder struct {
	OrderReference string  `json:"orderId"`
	Email          string  `json:"email"`
	Amount         float64 `json:"amount"`
}

type ValidationResponse struct {
	Valid   bool            `json:"valid"`
	Reason  string          `json:"reason,omitempty"`
	Message string          `json:"message,omitempty"`
	Order   *ValidatedOrder `json:"order,omitempty"`
}

func FromValidationView(v *queries.ValidationView) *ValidationResponse {
	resp := &ValidationResponse{Valid: v.Valid}
	if v.Valid {
		resp.Order = &ValidatedOrder{
			OrderReference: v.OrderReference,
			Email:          v.Email,
			Amount:         v.Amount,
		}
		return resp
	}

	resp.Reason = string(v.Reason)
	switch v.Reason {
	case queries.ReasonNotFound:
		resp.Message = "Order not found. Please check your order ID."
	case queries.ReasonEmailMismatch:
		resp.Message = "Email does not match the order."
	case queries.ReasonBelowMinimum:
		resp.Message = fmt.Sprintf("Order amount must be at least ₹%.0f to play.", v.MinimumAmount)
	case queries.ReasonAlreadyUsed:
		resp.Message = "This order has already been used to play."
	}
	return resp
}

type ScratchResponse struct {
	AlreadyPlayed bool         `json:"alreadyPlayed"`
	Prize         string       `json:"prize"`
	PrizeDetails  []prize.Item `json:"prizeDetails,omitempty"`
	Tier          string       `json:"tier"`
}

func FromRedemptionResult(r *commands.RedemptionResult) *ScratchResponse {
	return &ScratchResponse{
		AlreadyPlayed: r.AlreadyRedeemed,
		Prize:         r.PrizeName,
		PrizeDetails:  r.PrizeDetails,
		Tier:          r.TierName,
	}
}
