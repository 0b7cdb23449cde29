package services

import (
	"context"
	"time"

	"urban-threads/models"
	"urban-threads/utils"
)

// Authenticator matches credentials against some account source. A nil
// identity with a nil error means "no match", not a failure, so a caller
// cannot tell a wrong email from a wrong password.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.Identity, error)
}

type demoAccount struct {
	identity     models.Identity
	passwordHash string
}

// DemoAuthenticator holds the fixed demo allow-list: one admin account and
// one regular account. The artificial delay stands in for a network round
// trip to a real authentication service.
type DemoAuthenticator struct {
	accounts []demoAccount
	delay    time.Duration
}

// DemoAccountCount is the size of the fixed allow-list, shown on the admin
// dashboard as the user total.
const DemoAccountCount = 2

func NewDemoAuthenticator(delay time.Duration) (*DemoAuthenticator, error) {
	demo := []struct {
		identity models.Identity
		password string
	}{
		{models.Identity{Email: "admin@urbanthreads.com", Name: "Admin User", Role: models.RoleAdmin}, "admin123"},
		{models.Identity{Email: "user@urbanthreads.com", Name: "Regular User", Role: models.RoleUser}, "user123"},
	}

	a := &DemoAuthenticator{delay: delay}
	for _, d := range demo {
		hash, err := utils.HashPassword(d.password)
		if err != nil {
			return nil, err
		}
		a.accounts = append(a.accounts, demoAccount{identity: d.identity, passwordHash: hash})
	}
	return a, nil
}

func (a *DemoAuthenticator) Authenticate(ctx context.Context, email, password string) (*models.Identity, error) {
	if a.delay > 0 {
		select {
		case <-time.After(a.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	for _, account := range a.accounts {
		if account.identity.Email != email {
			continue
		}
		ok, err := utils.VerifyPassword(account.passwordHash, password)
		if err != nil || !ok {
			return nil, nil
		}
		identity := account.identity
		return &identity, nil
	}
	return nil, nil
}
