package models

// SecuritySettings holds the device owner's access credentials. The PIN is
// stored as a bcrypt hash; the refresh token hash allows token rotation
// without keeping the token itself.
type SecuritySettings struct {
	PinHash          string `json:"pinHash"`
	RefreshTokenHash string `json:"refreshTokenHash,omitempty"`
}

// HasPin reports whether a PIN has been configured.
func (s SecuritySettings) HasPin() bool {
	return s.PinHash != ""
}
