package contracts

import (
	"context"
	"net/http"

	"agenda-care-service/internal/app/models"
	"agenda-care-service/internal/pkg/dto/requests"
	"agenda-care-service/internal/pkg/dto/responses"
)

// AuthUsecase manages one token pair per auth context. The service keeps two
// contexts: "user" for the signed-in person and "client" for the service's
// own credentials.
type AuthUsecase interface {
	Login(ctx context.Context, authContext string, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, authContext string) error
	// CheckAuthentication reports whether the stored session is usable,
	// refreshing it first when the access token has expired.
	CheckAuthentication(ctx context.Context, authContext string) (bool, error)
	IsSessionValid(ctx context.Context, authContext string) (bool, error)
	TryRefreshToken(ctx context.Context, authContext string) (bool, error)
	AccessToken(ctx context.Context, authContext string) (string, error)
	ParseClaims(accessToken string) (*models.TokenClaims, error)
}

// TokenStore persists token pairs between requests. A missing session is not
// an error: Get returns (nil, nil).
type TokenStore interface {
	Get(ctx context.Context, authContext string) (*models.TokenPair, error)
	Set(ctx context.Context, authContext string, pair *models.TokenPair) error
	Delete(ctx context.Context, authContext string) error
}

// HeaderProvider decorates outbound FHIR requests, typically with the
// caller's bearer token.
type HeaderProvider interface {
	ApplyHeaders(ctx context.Context, header http.Header) error
}
