package responses

type Login struct {
	AccessToken    string `json:"accessToken"`
	RefreshToken   string `json:"refreshToken"`
	FhirResourceID string `json:"fhirResourceId,omitempty"`
	UserRole       string `json:"userRole,omitempty"`
}

type TokenRefresh struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
