package auth

import (
	"context"
	"errors"
	"fmt"

	"agenda-care-service/internal/app/config"
	"agenda-care-service/internal/app/contracts"
	"agenda-care-service/internal/app/models"
	"agenda-care-service/internal/app/services/shared/restclient"
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/dto/requests"
	"agenda-care-service/internal/pkg/dto/responses"
	"agenda-care-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type AuthUsecase struct {
	store        contracts.TokenStore
	client       *restclient.RestClient
	config       *config.InternalConfig
	logger       *zap.Logger
	refreshGroup singleflight.Group
	parser       *jwt.Parser
}

func NewAuthUsecase(
	store contracts.TokenStore,
	client *restclient.RestClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		store:  store,
		client: client,
		config: internalConfig,
		logger: logger,
		parser: jwt.NewParser(jwt.WithoutClaimsValidation()),
	}
}

func (u *AuthUsecase) Login(ctx context.Context, authContext string, request *requests.Login) (*responses.Login, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	resp, err := u.client.Post(ctx, constvars.AuthLoginEndpoint, body, constvars.MIMEApplicationJSON)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, exceptions.ErrInvalidCredentials(fmt.Errorf("auth service responded %d", resp.StatusCode))
	}

	var pair models.TokenPair
	if err := json.Unmarshal(resp.Body, &pair); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	claims, err := u.ParseClaims(pair.AccessToken)
	if err != nil {
		return nil, err
	}

	// The role claim is the gate for this client: an account without the
	// required role never gets a stored session.
	if required := u.config.Auth.RequiredRole; required != "" && claims.UserRole != required {
		u.logger.Warn("login rejected for role mismatch",
			zap.String(constvars.LoggingAuthContextKey, authContext),
			zap.String("user_role", claims.UserRole))
		return nil, exceptions.ErrInsufficientRole(fmt.Errorf("got role %q, need %q", claims.UserRole, required))
	}

	if err := u.store.Set(ctx, authContext, &pair); err != nil {
		return nil, err
	}

	u.logger.Info("session established",
		zap.String(constvars.LoggingAuthContextKey, authContext),
		zap.String("fhir_resource_id", claims.FhirResourceID))

	return &responses.Login{
		AccessToken:    pair.AccessToken,
		RefreshToken:   pair.RefreshToken,
		FhirResourceID: claims.FhirResourceID,
		UserRole:       claims.UserRole,
	}, nil
}

func (u *AuthUsecase) Logout(ctx context.Context, authContext string) error {
	return u.store.Delete(ctx, authContext)
}

func (u *AuthUsecase) IsSessionValid(ctx context.Context, authContext string) (bool, error) {
	pair, err := u.store.Get(ctx, authContext)
	if err != nil {
		return false, err
	}
	if pair == nil || pair.AccessToken == "" || pair.RefreshToken == "" {
		return false, nil
	}

	claims, err := u.ParseClaims(pair.AccessToken)
	if err != nil {
		return false, nil
	}
	if claims.ExpiresAt == nil {
		return false, nil
	}
	return claims.VerifyExpiresAt(jwt.TimeFunc(), true), nil
}

// TryRefreshToken exchanges the stored pair for a fresh one. Concurrent
// callers for the same context share a single upstream refresh. On any
// failure the stored tokens stay untouched.
func (u *AuthUsecase) TryRefreshToken(ctx context.Context, authContext string) (bool, error) {
	result, err, _ := u.refreshGroup.Do(authContext, func() (interface{}, error) {
		return u.refresh(ctx, authContext)
	})
	if err != nil {
		return false, err
	}
	return result.(bool), nil
}

func (u *AuthUsecase) refresh(ctx context.Context, authContext string) (bool, error) {
	pair, err := u.store.Get(ctx, authContext)
	if err != nil {
		return false, err
	}
	if pair == nil || pair.AccessToken == "" || pair.RefreshToken == "" {
		return false, nil
	}

	body, err := json.Marshal(&requests.RefreshToken{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	resp, err := u.client.Post(ctx, constvars.AuthRefreshEndpoint, body, constvars.MIMEApplicationJSON)
	if err != nil {
		u.logger.Warn("token refresh request failed",
			zap.String(constvars.LoggingAuthContextKey, authContext),
			zap.Error(err))
		return false, nil
	}
	if !resp.OK() {
		u.logger.Warn("token refresh rejected",
			zap.String(constvars.LoggingAuthContextKey, authContext),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode))
		return false, nil
	}

	var fresh models.TokenPair
	if err := json.Unmarshal(resp.Body, &fresh); err != nil {
		return false, nil
	}
	if fresh.AccessToken == "" || fresh.RefreshToken == "" {
		return false, nil
	}

	if err := u.store.Set(ctx, authContext, &fresh); err != nil {
		return false, err
	}
	return true, nil
}

func (u *AuthUsecase) CheckAuthentication(ctx context.Context, authContext string) (bool, error) {
	valid, err := u.IsSessionValid(ctx, authContext)
	if err != nil {
		return false, err
	}
	if valid {
		return true, nil
	}
	return u.TryRefreshToken(ctx, authContext)
}

func (u *AuthUsecase) AccessToken(ctx context.Context, authContext string) (string, error) {
	pair, err := u.store.Get(ctx, authContext)
	if err != nil {
		return "", err
	}
	if pair == nil || pair.AccessToken == "" {
		return "", exceptions.ErrTokenMissing(errors.New("no stored session"))
	}
	return pair.AccessToken, nil
}

// ParseClaims decodes the token payload without signature verification. The
// auth service is the verifier; this side only reads exp and identity claims.
func (u *AuthUsecase) ParseClaims(accessToken string) (*models.TokenClaims, error) {
	claims := &models.TokenClaims{}
	_, _, err := u.parser.ParseUnverified(accessToken, claims)
	if err != nil {
		return nil, exceptions.ErrTokenDecode(err)
	}
	return claims, nil
}
