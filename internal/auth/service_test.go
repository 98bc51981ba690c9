package auth

import (
	"context"
	"fmt"
	"io"
	"os"
	"testing"

	"andes-autoparts/internal/database"
	"andes-autoparts/internal/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestService(t *testing.T, users ...models.User) *Service {
	t.Helper()
	db, err := database.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	for i := range users {
		require.NoError(t, db.Create(&users[i]).Error)
	}
	return NewService(db)
}

func TestAuthenticate_PlaintextLegacyRow(t *testing.T) {
	svc := newTestService(t, models.User{Username: "ana", Password: "clave123", Role: models.RoleAdmin})

	user, err := svc.Authenticate(context.Background(), "ana", "clave123")
	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
	assert.True(t, user.IsAdmin())
}

func TestAuthenticate_Failures(t *testing.T) {
	svc := newTestService(t, models.User{Username: "ana", Password: "clave123", Role: "vendedor"})

	cases := []struct {
		name, username, password string
	}{
		{"wrong password", "ana", "clave124"},
		{"unknown user", "pedro", "clave123"},
		{"username is case sensitive", "ANA", "clave123"},
		{"password is case sensitive", "ana", "CLAVE123"},
		{"empty password", "ana", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := svc.Authenticate(context.Background(), tc.username, tc.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Nil(t, user)
		})
	}
}

func TestCreateUser_HashesPassword(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateUser(context.Background(), "luis", "s3creta", models.RoleAdmin)
	require.NoError(t, err)
	assert.NotEqual(t, "s3creta", created.Password)

	user, err := svc.Authenticate(context.Background(), "luis", "s3creta")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	_, err = svc.Authenticate(context.Background(), "luis", created.Password)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.CreateUser(context.Background(), "luis", "otra", "vendedor")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword(hash, "wrongpassword"))
	assert.True(t, CheckPassword("plain", "plain"))
	assert.False(t, CheckPassword("plain", "plain "))
	assert.False(t, CheckPassword("$2a$invalid", "$2a$invalid"))
}
