package models

// Envelope is the common response wrapper of the platform: every farming and
// quest endpoint returns its payload under "data".
type Envelope[T any] struct {
	Data T `json:"data"`
}

// AuthResponse is the body returned by the authentication endpoint.
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// ClaimResponse is the payload of a farm claim.
type ClaimResponse struct {
	Amount Amount `json:"amount"`
}

// IPResponse is the body returned by the public IP echo service.
type IPResponse struct {
	IP string `json:"ip"`
}
