package service_test

import (
	"context"
	"testing"

	"github.com/rbarbosa/accounts-api/internal/domain"
	"github.com/rbarbosa/accounts-api/internal/repository/postgres"
	"github.com/rbarbosa/accounts-api/internal/service"
	"github.com/rbarbosa/accounts-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.RegisterInput
		setup   func()
		wantErr error
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				Name:     "Ana",
				Email:    "ana@x.com",
				Password: "pw1",
			},
		},
		{
			name: "duplicate email",
			input: service.RegisterInput{
				Name:     "Other Ana",
				Email:    "taken@x.com",
				Password: "pw2",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("taken@x.com").
					Build(t, testDB.DB)
			},
			wantErr: domain.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clean up between tests
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			user, err := services.Account.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, user.ID)
			assert.Equal(t, tt.input.Name, user.Name)
			assert.Equal(t, tt.input.Email, user.Email)
			// The hash is opaque, never the plaintext
			assert.NotEmpty(t, user.PasswordHash)
			assert.NotEqual(t, tt.input.Password, user.PasswordHash)
		})
	}
}

func TestAccountService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@x.com").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name: "successful login",
			input: service.LoginInput{
				Email:    user.Email,
				Password: rawPassword,
			},
		},
		{
			name: "wrong password",
			input: service.LoginInput{
				Email:    user.Email,
				Password: "wrongpassword",
			},
			wantErr: domain.ErrWrongPassword,
		},
		{
			name: "unknown email",
			input: service.LoginInput{
				Email:    "nobody@x.com",
				Password: "anypassword",
			},
			wantErr: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := services.Account.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, token)

			// The issued token carries the user's identity
			claims, err := services.Tokens.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, user.ID, claims.UserID)
			assert.Equal(t, user.Email, claims.Email)
		})
	}
}

func TestAccountService_Profile(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithName("Ana").
		Build(t, testDB.DB)

	t.Run("existing user", func(t *testing.T) {
		got, err := services.Account.Profile(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Name, got.Name)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := services.Account.Profile(ctx, user.ID+1000)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("profile survives email change", func(t *testing.T) {
		// The account is resolved by id, so a token issued before an
		// email change still reaches the current record.
		err := services.Account.UpdateProfile(ctx, user.ID, service.UpdateInput{Email: "renamed@x.com"})
		require.NoError(t, err)

		got, err := services.Account.Profile(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "renamed@x.com", got.Email)
	})
}

func TestAccountService_UpdateProfile(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	t.Run("name only keeps email", func(t *testing.T) {
		user, _ := testutil.NewUserBuilder().WithName("Old Name").Build(t, testDB.DB)

		err := services.Account.UpdateProfile(ctx, user.ID, service.UpdateInput{Name: "New Name"})
		require.NoError(t, err)

		got, err := services.Account.Profile(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Name", got.Name)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("email taken by another account", func(t *testing.T) {
		existing, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		err := services.Account.UpdateProfile(ctx, user.ID, service.UpdateInput{Email: existing.Email})
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})
}

func TestAccountService_DeleteAccount(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	require.NoError(t, services.Account.DeleteAccount(ctx, user.ID))

	_, err := services.Account.Profile(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	// Deleting again reports the account as gone
	err = services.Account.DeleteAccount(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
