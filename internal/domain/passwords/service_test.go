package passwords

import (
	"context"
	"errors"
	"testing"

	"workspace-portal/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	savedUserID uint
	savedHash   string
	saveCalls   int
	saveErr     error
}

func (f *fakeUserStore) SavePasswordHash(ctx context.Context, userID uint, hash string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saveCalls++
	f.savedUserID = userID
	f.savedHash = hash
	return nil
}

func hashOf(t *testing.T, password string) *string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(h)
	return &s
}

func socialUser() users.User {
	return users.User{ID: 7, AuthProvider: users.ProviderGoogle, Password: nil}
}

func localUser(t *testing.T) users.User {
	return users.User{ID: 9, AuthProvider: users.ProviderLocal, Password: hashOf(t, "oldpass123")}
}

func TestUpdatePureSocialSetsPassword(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store, DefaultPolicy())

	flash, errs, err := svc.Update(context.Background(), socialUser(), Input{
		Password:             "newpass123",
		PasswordConfirmation: "newpass123",
	})

	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, MsgPasswordSet, flash)
	assert.Equal(t, 1, store.saveCalls)
	assert.Equal(t, uint(7), store.savedUserID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.savedHash), []byte("newpass123")))
}

func TestUpdatePureSocialSkipsCurrentPasswordCheck(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store, DefaultPolicy())

	// current_password is not required and not validated for a
	// social-only account
	flash, errs, err := svc.Update(context.Background(), socialUser(), Input{
		Password:             "newpass123",
		PasswordConfirmation: "newpass123",
		CurrentPassword:      "whatever",
	})

	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, MsgPasswordSet, flash)
}

func TestUpdateRegularUserSuccess(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store, DefaultPolicy())

	flash, errs, err := svc.Update(context.Background(), localUser(t), Input{
		CurrentPassword:      "oldpass123",
		Password:             "newpass123",
		PasswordConfirmation: "newpass123",
	})

	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, MsgPasswordUpdated, flash)
	assert.Equal(t, 1, store.saveCalls)
}

func TestUpdateRegularUserWrongCurrentPassword(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store, DefaultPolicy())

	flash, errs, err := svc.Update(context.Background(), localUser(t), Input{
		CurrentPassword:      "not-the-password",
		Password:             "newpass123",
		PasswordConfirmation: "newpass123",
	})

	require.NoError(t, err)
	assert.Empty(t, flash)
	assert.Equal(t, "The current password is incorrect.", errs["current_password"])
	assert.Zero(t, store.saveCalls, "hash must not change on a failed update")
}

func TestUpdateRegularUserMissingCurrentPassword(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store, DefaultPolicy())

	_, errs, err := svc.Update(context.Background(), localUser(t), Input{
		Password:             "newpass123",
		PasswordConfirmation: "newpass123",
	})

	require.NoError(t, err)
	assert.Equal(t, "The current password field is required.", errs["current_password"])
	assert.Zero(t, store.saveCalls)
}

func TestUpdateConfirmationMismatch(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store, DefaultPolicy())

	_, errs, err := svc.Update(context.Background(), socialUser(), Input{
		Password:             "newpass123",
		PasswordConfirmation: "different123",
	})

	require.NoError(t, err)
	assert.Equal(t, "The password confirmation does not match.", errs["password_confirmation"])
	assert.Zero(t, store.saveCalls)
}

func TestUpdateWeakPassword(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store, DefaultPolicy())

	tests := []struct {
		name     string
		password string
	}{
		{"too short", "ab1"},
		{"no digits", "longpassword"},
		{"no letters", "1234567890"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs, err := svc.Update(context.Background(), socialUser(), Input{
				Password:             tt.password,
				PasswordConfirmation: tt.password,
			})
			require.NoError(t, err)
			assert.NotEmpty(t, errs["password"])
		})
	}
	assert.Zero(t, store.saveCalls)
}

func TestUpdateMissingPassword(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store, DefaultPolicy())

	_, errs, err := svc.Update(context.Background(), socialUser(), Input{})

	require.NoError(t, err)
	assert.Equal(t, "The password field is required.", errs["password"])
}

func TestUpdateStoreFailureSurfaces(t *testing.T) {
	store := &fakeUserStore{saveErr: errors.New("db down")}
	svc := NewService(store, DefaultPolicy())

	flash, errs, err := svc.Update(context.Background(), socialUser(), Input{
		Password:             "newpass123",
		PasswordConfirmation: "newpass123",
	})

	require.Error(t, err)
	assert.Empty(t, flash)
	assert.Empty(t, errs)
}
