package services

import (
	"testing"

	"tally/internal/storage"
	"tally/internal/testutil"
)

func newAuthFixture(t *testing.T) (storage.Storer, AuthServicer) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	store := storage.NewStore(db)
	return store, NewAuthService(store)
}

func TestSetupPin(t *testing.T) {
	t.Run("first_time", func(t *testing.T) {
		_, svc := newAuthFixture(t)

		testutil.AssertNoError(t, svc.SetupPin("", "1234"))

		has, err := svc.HasPin()
		testutil.AssertNoError(t, err)
		if !has {
			t.Error("expected a PIN to be configured")
		}
	})

	t.Run("change_with_correct_current", func(t *testing.T) {
		_, svc := newAuthFixture(t)

		testutil.AssertNoError(t, svc.SetupPin("", "1234"))
		testutil.AssertNoError(t, svc.SetupPin("1234", "567890"))
		testutil.AssertNoError(t, svc.VerifyPin("567890"))
		testutil.AssertAppError(t, svc.VerifyPin("1234"), "INVALID_PIN")
	})

	t.Run("change_with_wrong_current", func(t *testing.T) {
		_, svc := newAuthFixture(t)

		testutil.AssertNoError(t, svc.SetupPin("", "1234"))
		testutil.AssertAppError(t, svc.SetupPin("0000", "5678"), "INVALID_PIN")
	})

	t.Run("too_short", func(t *testing.T) {
		_, svc := newAuthFixture(t)

		testutil.AssertAppError(t, svc.SetupPin("", "123"), "INVALID_INPUT")
	})

	t.Run("invalidates_refresh_token", func(t *testing.T) {
		_, svc := newAuthFixture(t)

		testutil.AssertNoError(t, svc.SetupPin("", "1234"))
		testutil.AssertNoError(t, svc.StoreRefreshTokenHash("somehash"))
		testutil.AssertNoError(t, svc.SetupPin("1234", "5678"))

		hash, err := svc.GetRefreshTokenHash()
		testutil.AssertNoError(t, err)
		if hash != "" {
			t.Error("expected refresh token hash to be cleared after PIN change")
		}
	})
}

func TestVerifyPin(t *testing.T) {
	t.Run("correct", func(t *testing.T) {
		_, svc := newAuthFixture(t)

		testutil.AssertNoError(t, svc.SetupPin("", "1234"))
		testutil.AssertNoError(t, svc.VerifyPin("1234"))
	})

	t.Run("wrong", func(t *testing.T) {
		_, svc := newAuthFixture(t)

		testutil.AssertNoError(t, svc.SetupPin("", "1234"))
		testutil.AssertAppError(t, svc.VerifyPin("4321"), "INVALID_PIN")
	})

	t.Run("not_configured", func(t *testing.T) {
		_, svc := newAuthFixture(t)

		testutil.AssertAppError(t, svc.VerifyPin("1234"), "PIN_NOT_SET")
	})
}

func TestRefreshTokenHash(t *testing.T) {
	_, svc := newAuthFixture(t)

	hash, err := svc.GetRefreshTokenHash()
	testutil.AssertNoError(t, err)
	if hash != "" {
		t.Errorf("expected no hash initially, got %q", hash)
	}

	testutil.AssertNoError(t, svc.StoreRefreshTokenHash("abc123"))
	hash, err = svc.GetRefreshTokenHash()
	testutil.AssertNoError(t, err)
	if hash != "abc123" {
		t.Errorf("expected stored hash, got %q", hash)
	}
}
