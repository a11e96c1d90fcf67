package auth

import (
	"context"
	"errors"
	"net/http"

	"agenda-care-service/internal/app/contracts"
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/exceptions"
)

// BearerHeaderProvider resolves the bearer token for outbound FHIR calls,
// refreshing the session first when the access token has expired. Resolution
// happening inside the request path is what makes refresh lazy.
type BearerHeaderProvider struct {
	auth        contracts.AuthUsecase
	authContext string
}

func NewBearerHeaderProvider(auth contracts.AuthUsecase, authContext string) *BearerHeaderProvider {
	return &BearerHeaderProvider{auth: auth, authContext: authContext}
}

func (p *BearerHeaderProvider) ApplyHeaders(ctx context.Context, header http.Header) error {
	ok, err := p.auth.CheckAuthentication(ctx, p.authContext)
	if err != nil {
		return err
	}
	if !ok {
		return exceptions.ErrTokenInvalidOrExpired(errors.New("session expired and refresh failed"))
	}

	token, err := p.auth.AccessToken(ctx, p.authContext)
	if err != nil {
		return err
	}
	header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	return nil
}
