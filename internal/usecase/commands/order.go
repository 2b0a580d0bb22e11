package commands

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"scratch-win/internal/domain/order"
	"scratch-win/internal/domain/prize"
	"scratch-win/internal/infra"
	"scratch-win/internal/infra/repository"
	"scratch-win/internal/pkg/config"
	"scratch-win/internal/pkg/errs"
)

var (
	ErrEmailDomainNotAllowed = errs.New("email domain not allowed")
	ErrProductOutOfStock     = errs.New("product out of stock")
	ErrReferenceExhausted    = errs.New("could not allocate a unique order reference")
	ErrDuplicateReference    = errs.New("order reference already exists")
)

// referenceAttempts bounds the random-suffix search. With a two-digit
// suffix the space is 100 references per username, so exhaustion means the
// customer has nearly filled it.
const referenceAttempts = 5

type CatalogLine struct {
	ProductID int64
	Quantity  int
}

type CreatedOrder struct {
	Reference  string
	Email      string
	Amount     float64
	LineItems  []order.LineItem
	IsEligible bool
	TierName   string
}

type OrderCommands interface {
	// CreateFromCatalog prices the order from the product catalog.
	CreateFromCatalog(ctx context.Context, email string, lines []CatalogLine) (*CreatedOrder, error)
	// CreateWithAmount records an order at a stated total, for purchases
	// rung up outside the catalog.
	CreateWithAmount(ctx context.Context, email string, amount float64, items []order.LineItem) (*CreatedOrder, error)
}

type orderUseCaseImpl struct {
	orders   OrderRepository
	products ProductRepository
	table    prize.Table
	campaign config.CampaignConfig
	db       repository.DBTX
	randInt  func(n int) int
}

func NewOrderCommands(
	orders OrderRepository,
	products ProductRepository,
	table prize.Table,
	campaign config.CampaignConfig,
	db repository.DBTX,
) OrderCommands {
	return &orderUseCaseImpl{
		orders:   orders,
		products: products,
		table:    table,
		campaign: campaign,
		db:       db,
		randInt:  rand.Intn,
	}
}

func (u *orderUseCaseImpl) CreateFromCatalog(ctx context.Context, email string, lines []CatalogLine) (*CreatedOrder, error) {
	if err := u.checkEmailDomain(email); err != nil {
		return nil, err
	}

	var total float64
	items := make([]order.LineItem, 0, len(lines))
	for _, line := range lines {
		p, err := u.products.FindByID(ctx, line.ProductID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(errs.Newf("product %d not found", line.ProductID), ErrProductNotFound)
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !p.InStock {
			return nil, errs.Mark(errs.Newf("product %q is out of stock", p.Name), ErrProductOutOfStock)
		}
		subtotal := p.Price * float64(line.Quantity)
		total += subtotal
		items = append(items, order.LineItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
	}

	return u.create(ctx, email, total, items)
}

func (u *orderUseCaseImpl) CreateWithAmount(ctx context.Context, email string, amount float64, items []order.LineItem) (*CreatedOrder, error) {
	if err := u.checkEmailDomain(email); err != nil {
		return nil, err
	}
	return u.create(ctx, email, amount, items)
}

func (u *orderUseCaseImpl) create(ctx context.Context, email string, amount float64, items []order.LineItem) (*CreatedOrder, error) {
	reference, err := u.generateReference(ctx, email)
	if err != nil {
		return nil, err
	}

	ord := order.New(reference, email, amount, items, u.campaign.MinPurchaseAmount)
	if err := u.orders.Create(ctx, u.db, ord); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateReference)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	tier, err := u.table.ResolveTier(ord.Amount)
	tierName := ""
	if err == nil && ord.IsEligible {
		tierName = tier.Name
	}

	return &CreatedOrder{
		Reference:  ord.Reference,
		Email:      ord.Email,
		Amount:     ord.Amount,
		LineItems:  ord.LineItems,
		IsEligible: ord.IsEligible,
		TierName:   tierName,
	}, nil
}

// generateReference derives USERNAME_NN from the email's local part and
// probes a bounded number of random suffixes for a free slot.
func (u *orderUseCaseImpl) generateReference(ctx context.Context, email string) (string, error) {
	username := strings.ToUpper(strings.SplitN(email, "@", 2)[0])
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		reference := fmt.Sprintf("%s_%02d", username, u.randInt(100))
		_, err := u.orders.FindByReference(ctx, reference)
		if err == nil {
			continue
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return reference, nil
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return "", ErrReferenceExhausted
}

func (u *orderUseCaseImpl) checkEmailDomain(email string) error {
	domain := u.campaign.AllowedEmailDomain
	if domain == "" {
		return nil
	}
	if !strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(strings.TrimPrefix(domain, "@"))) {
		return errs.Mark(errs.Newf("email must belong to %s", domain), ErrEmailDomainNotAllowed)
	}
	return nil
}
