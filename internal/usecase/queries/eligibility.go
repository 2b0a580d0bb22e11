package queries

import (
	"context"

	"scratch-win/internal/infra"
	"scratch-win/internal/pkg/config"
	"scratch-win/internal/pkg/errs"
)

var ErrValidationFailed = errs.New("order validation failed")

// Reason tags why an order cannot proceed to redemption.
type Reason string

const (
	ReasonNotFound      Reason = "NOT_FOUND"
	ReasonEmailMismatch Reason = "EMAIL_MISMATCH"
	ReasonBelowMinimum  Reason = "BELOW_MINIMUM"
	ReasonAlreadyUsed   Reason = "ALREADY_USED"
)

// ValidationView is the gate's answer. Invalid outcomes are data, not
// errors: the caller translates Reason into a user message. AlreadyUsed is
// a terminal success state resolved by fetching the stored play.
type ValidationView struct {
	Valid          bool
	Reason         Reason
	OrderReference string
	Email          string
	Amount         float64
	MinimumAmount  float64
}

type EligibilityQueries interface {
	// ValidateOrder is a read-only pre-check; it gives a fast, descriptive
	// rejection but is not the concurrency-safety mechanism. The redemption
	// transaction re-checks everything it depends on.
	ValidateOrder(ctx context.Context, reference, email string) (*ValidationView, error)
}

type eligibilityQueriesImpl struct {
	orders   OrderReadStore
	campaign config.CampaignConfig
}

func NewEligibilityQueries(orders OrderReadStore, campaign config.CampaignConfig) EligibilityQueries {
	return &eligibilityQueriesImpl{
		orders:   orders,
		campaign: campaign,
	}
}

func (q *eligibilityQueriesImpl) ValidateOrder(ctx context.Context, reference, email string) (*ValidationView, error) {
	ord, err := q.orders.FindByReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &ValidationView{Reason: ReasonNotFound, OrderReference: reference}, nil
		}
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	view := &ValidationView{
		OrderReference: ord.Reference,
		Email:          ord.Email,
		Amount:         ord.Amount,
		MinimumAmount:  q.campaign.MinPurchaseAmount,
	}

	switch {
	case !ord.EmailMatches(email):
		view.Reason = ReasonEmailMismatch
	case !ord.MeetsMinimum(q.campaign.MinPurchaseAmount):
		view.Reason = ReasonBelowMinimum
	case ord.Consumed:
		view.Reason = ReasonAlreadyUsed
	default:
		view.Valid = true
	}

	return view, nil
}
