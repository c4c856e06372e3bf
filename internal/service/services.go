package service

import (
	"time"

	"github.com/rbarbosa/accounts-api/internal/auth"
	"github.com/rbarbosa/accounts-api/internal/config"
	"github.com/rbarbosa/accounts-api/internal/repository"
)

type Services struct {
	Account *AccountService
	Tokens  *auth.TokenManager
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	return &Services{
		Account: NewAccountService(repos.User, tokens),
		Tokens:  tokens,
	}
}
