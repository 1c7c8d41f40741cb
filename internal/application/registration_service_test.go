package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cnic-auth/backend/internal/application"
	"github.com/cnic-auth/backend/internal/domain/repository"
	"github.com/cnic-auth/backend/pkg/helpers"
)

func validInput() application.RegisterInput {
	return application.RegisterInput{
		FullName:        "Ayesha Khan",
		Email:           "ayesha@example.com",
		CNIC:            "1234567890123",
		Gender:          "female",
		DOB:             "1995-04-12",
		Password:        "abc12345",
		ConfirmPassword: "abc12345",
	}
}

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := &memoryUserRepo{}
	reg := application.NewRegistrationService(repo, nil, nil, false)

	fieldErrs, err := reg.Register(ctx, validInput())
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	require.Equal(t, 1, repo.count())

	u, err := repo.GetByCNIC("1234567890123")
	require.NoError(t, err)
	require.True(t, u.IsActive)
	require.NotEqual(t, "abc12345", u.PasswordHash)
	require.True(t, helpers.CompareHashAndPassword(u.PasswordHash, "abc12345"))

	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", testAccessTTL, testRefreshTTL)
	auth := application.NewAuthService(repo, newMemoryBlacklist(), jwt, nil)
	res, err := auth.Login(ctx, "1234567890123", "abc12345")
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	require.NotEmpty(t, res.RefreshToken)
	require.Equal(t, u.UserID, res.User.UserID)
}

func TestRegisterCNICFormat(t *testing.T) {
	ctx := context.Background()
	repo := &memoryUserRepo{}
	reg := application.NewRegistrationService(repo, nil, nil, false)

	for _, cnic := range []string{"123456789012", "12345678901234", "12345678901ab", ""} {
		in := validInput()
		in.CNIC = cnic
		fieldErrs, err := reg.Register(ctx, in)
		require.NoError(t, err)
		require.NotNil(t, fieldErrs, "cnic=%q", cnic)
		require.Contains(t, fieldErrs, "cnic")
		require.Equal(t, 0, repo.count(), "no record may be created for cnic=%q", cnic)
	}

	in := validInput()
	in.CNIC = "1234567890124"
	fieldErrs, err := reg.Register(ctx, in)
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
}

func TestRegisterPasswordPolicy(t *testing.T) {
	ctx := context.Background()
	repo := &memoryUserRepo{}
	reg := application.NewRegistrationService(repo, nil, nil, false)

	cases := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{"too short", "short1", "Password must be at least 8 characters."},
		{"no digit", "abcdefgh", "Password must contain at least one digit."},
		{"no letter", "12345678", "Password must contain at least one letter."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.Password = tc.password
			in.ConfirmPassword = tc.password
			fieldErrs, err := reg.Register(ctx, in)
			require.NoError(t, err)
			require.Equal(t, tc.wantMsg, fieldErrs["password"])
			require.Equal(t, 0, repo.count())
		})
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	ctx := context.Background()
	repo := &memoryUserRepo{}
	reg := application.NewRegistrationService(repo, nil, nil, false)

	in := validInput()
	in.ConfirmPassword = "abc12346"
	fieldErrs, err := reg.Register(ctx, in)
	require.NoError(t, err)
	require.Equal(t, "Passwords do not match", fieldErrs["confirm_password"])
	require.Equal(t, 0, repo.count())
}

func TestRegisterCollectsAllFieldErrors(t *testing.T) {
	ctx := context.Background()
	reg := application.NewRegistrationService(&memoryUserRepo{}, nil, nil, false)

	in := application.RegisterInput{
		FullName:        "",
		Email:           "not-an-email",
		CNIC:            "12",
		Gender:          "unknown",
		DOB:             "12-04-1995",
		Password:        "short1",
		ConfirmPassword: "different",
	}
	fieldErrs, err := reg.Register(ctx, in)
	require.NoError(t, err)
	for _, field := range []string{"full_name", "email", "cnic", "gender", "dob", "password", "confirm_password"} {
		require.Contains(t, fieldErrs, field)
	}
}

func TestRegisterDuplicateLeavesExistingRecord(t *testing.T) {
	ctx := context.Background()
	repo := &memoryUserRepo{}
	reg := application.NewRegistrationService(repo, nil, nil, false)

	fieldErrs, err := reg.Register(ctx, validInput())
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	orig, err := repo.GetByCNIC("1234567890123")
	require.NoError(t, err)

	// Same CNIC, different email
	in := validInput()
	in.Email = "other@example.com"
	fieldErrs, err = reg.Register(ctx, in)
	require.Nil(t, fieldErrs)
	require.ErrorIs(t, err, repository.ErrDuplicateUser)

	// Same email, different CNIC
	in = validInput()
	in.CNIC = "9876543210987"
	_, err = reg.Register(ctx, in)
	require.ErrorIs(t, err, repository.ErrDuplicateUser)

	require.Equal(t, 1, repo.count())
	after, err := repo.GetByCNIC("1234567890123")
	require.NoError(t, err)
	require.Equal(t, orig, after)
}

func TestRegisterNormalizesEmailDomain(t *testing.T) {
	ctx := context.Background()
	repo := &memoryUserRepo{}
	reg := application.NewRegistrationService(repo, nil, nil, false)

	in := validInput()
	in.Email = "Ayesha@Example.COM"
	fieldErrs, err := reg.Register(ctx, in)
	require.NoError(t, err)
	require.Nil(t, fieldErrs)

	u, err := repo.GetByCNIC(in.CNIC)
	require.NoError(t, err)
	require.Equal(t, "Ayesha@example.com", u.Email)
}
