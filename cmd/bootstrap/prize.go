package bootstrap

import (
	"scratch-win/internal/domain/prize"
	"scratch-win/internal/pkg/config"

	"go.uber.org/fx"
)

var PrizeModule = fx.Module("prize",
	fx.Provide(
		NewPrizeTable,
	),
)

// NewPrizeTable validates the configured tier table at startup; a broken
// table must fail boot, not a customer's draw.
func NewPrizeTable(cfg config.Config) (prize.Table, error) {
	tiers, err := prize.ParseTiers(cfg.Campaign.PrizeTiers)
	if err != nil {
		return prize.Table{}, err
	}
	return prize.NewTable(tiers)
}
