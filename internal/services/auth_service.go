package services

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "tally/internal/errors"
	"tally/internal/storage"
)

const (
	minPinLength = 4
	maxPinLength = 12
)

// authService implements the PIN gate. There is a single owner, so the
// credentials live in one security-settings document rather than a users
// table.
type authService struct {
	store storage.Storer
}

// NewAuthService creates a new AuthServicer.
func NewAuthService(store storage.Storer) AuthServicer {
	return &authService{store: store}
}

// SetupPin sets the PIN on first use, or changes it when the current PIN is
// supplied and correct.
func (s *authService) SetupPin(currentPin, newPin string) error {
	if len(newPin) < minPinLength || len(newPin) > maxPinLength {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "PIN must be 4 to 12 characters")
	}

	settings, err := s.store.LoadSecurity()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if settings.HasPin() {
		if bcrypt.CompareHashAndPassword([]byte(settings.PinHash), []byte(currentPin)) != nil {
			return apperrors.ErrInvalidPin
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPin), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	settings.PinHash = string(hash)
	// Changing the PIN invalidates any outstanding refresh token.
	settings.RefreshTokenHash = ""

	if err := s.store.SaveSecurity(settings); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// VerifyPin checks a login attempt against the stored hash.
func (s *authService) VerifyPin(pin string) error {
	settings, err := s.store.LoadSecurity()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !settings.HasPin() {
		return apperrors.ErrPinNotSet
	}
	if bcrypt.CompareHashAndPassword([]byte(settings.PinHash), []byte(pin)) != nil {
		return apperrors.ErrInvalidPin
	}
	return nil
}

// HasPin reports whether a PIN has been configured yet.
func (s *authService) HasPin() (bool, error) {
	settings, err := s.store.LoadSecurity()
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return settings.HasPin(), nil
}

// StoreRefreshTokenHash records the hash of the active refresh token.
func (s *authService) StoreRefreshTokenHash(hash string) error {
	settings, err := s.store.LoadSecurity()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	settings.RefreshTokenHash = hash
	if err := s.store.SaveSecurity(settings); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetRefreshTokenHash returns the hash of the active refresh token, empty
// when none is outstanding.
func (s *authService) GetRefreshTokenHash() (string, error) {
	settings, err := s.store.LoadSecurity()
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return settings.RefreshTokenHash, nil
}
