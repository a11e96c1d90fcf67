package models

import "github.com/golang-jwt/jwt/v4"

// TokenPair is the session stored per user: both tokens travel together so a
// successful refresh replaces the pair atomically.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenClaims mirrors the payload the auth service signs into access tokens.
// FhirResourceID is the bare id of the caller's FHIR resource, without a
// "Type/" prefix; callers prepend the resource type when building requests.
type TokenClaims struct {
	FhirResourceID string `json:"fhir_resource_id"`
	UserRole       string `json:"user_role"`
	jwt.RegisteredClaims
}
