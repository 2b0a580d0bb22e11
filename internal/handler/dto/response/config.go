package response

import (
	"scratch-win/internal/domain/prize"
	"scratch-win/internal/pkg/config"
)

type StoreInfo struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
}

type TierInfo struct {
	Name      string  `json:"name"`
	MinAmount float64 `json:"min"`
	MaxAmount float64 `json:"max"`
}

type ConfigResponse struct {
	MinPurchaseAmount float64    `json:"minPurchaseAmount"`
	ScratchThreshold  int        `json:"scratchThreshold"`
	Store             StoreInfo  `json:"store"`
	Tiers             []TierInfo `json:"tiers"`
}

func FromCampaign(campaign config.CampaignConfig, table prize.Table) *ConfigResponse {
	tiers := table.Tiers()
	infos := make([]TierInfo, len(tiers))
	for i, t := range tiers {
		infos[i] = TierInfo{Name: t.Name, MinAmount: t.MinAmount, MaxAmount: t.MaxAmount}
	}
	return &ConfigResponse{
		MinPurchaseAmount: campaign.MinPurchaseAmount,
		ScratchThreshold:  campaign.ScratchThreshold,
		Store: StoreInfo{
			Name:        campaign.StoreName,
			Tagline:     campaign.StoreTagline,
			Description: campaign.StoreDescription,
		},
		Tiers: infos,
	}
}
