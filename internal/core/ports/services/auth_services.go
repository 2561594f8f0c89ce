package services

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// AuthSvcFacade authenticates employees and issues session tokens.
type AuthSvcFacade interface {
	// Login verifies the credentials and returns a signed session token with
	// the principal embedded in it.
	Login(ctx context.Context, email, password string) (string, *domain.Principal, error)
}
