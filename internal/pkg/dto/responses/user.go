package responses

// UserProfile is the flattened patient card shown by the mobile app.
type UserProfile struct {
	Fullname  string `json:"fullname"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Gender    string `json:"gender,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
	Address   string `json:"address,omitempty"`
	Photo     string `json:"photo,omitempty"`
	HealthID  string `json:"healthId,omitempty"`
}
