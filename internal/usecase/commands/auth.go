package commands

import (
	"crypto/subtle"

	"scratch-win/internal/pkg/config"
	"scratch-win/internal/pkg/errs"
	"scratch-win/internal/pkg/jwt"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("failed to generate token")
)

type AuthCommands interface {
	Login(password string) (string, error)
}

type authUseCaseImpl struct {
	campaign config.CampaignConfig
	tokens   *jwt.Service
}

func NewAuthCommands(campaign config.CampaignConfig, tokens *jwt.Service) AuthCommands {
	return &authUseCaseImpl{campaign: campaign, tokens: tokens}
}

func (u *authUseCaseImpl) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(u.campaign.AdminPassword)) != 1 {
		return "", ErrInvalidCredentials
	}
	token, err := u.tokens.GenerateAdminToken()
	if err != nil {
		return "", errs.Mark(err, ErrTokenGeneration)
	}
	return token, nil
}
