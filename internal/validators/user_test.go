package validators

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/osouza/go-user-accounts/internal/apperrors"
	"github.com/osouza/go-user-accounts/internal/mock"
	"github.com/osouza/go-user-accounts/internal/store"
	"github.com/osouza/go-user-accounts/models"
)

func validInput() models.UserInput {
	return models.UserInput{
		Name:      "User Test",
		Email:     "test@example.com",
		Password:  "123abc",
		BirthDate: "01-01-2000",
	}
}

func requireValidation(t *testing.T, err error, wantMessage string) {
	t.Helper()
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, wantMessage, appErr.Message)
}

func TestValidateNewUser_PasswordLength(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := NewUserValidator(mock.NewMockUserRepository(ctrl))

	for _, password := range []string{"", "1", "12345", "a1b2c"} {
		input := validInput()
		input.Password = password

		err := v.ValidateNewUser(context.Background(), input)
		requireValidation(t, err, MsgPasswordTooShort)
	}
}

func TestValidateNewUser_PasswordComposition(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := NewUserValidator(mock.NewMockUserRepository(ctrl))

	for _, password := range []string{"abcdef", "ABCDEF", "123456", "!@#$%^&*"} {
		input := validInput()
		input.Password = password

		err := v.ValidateNewUser(context.Background(), input)
		requireValidation(t, err, MsgPasswordComposition)
	}
}

func TestValidateNewUser_PasswordCompositionAllowsExtraCharacters(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "test@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	input := validInput()
	input.Password = "a1!@#$%"

	err := NewUserValidator(repo).ValidateNewUser(context.Background(), input)
	assert.NoError(t, err)
}

func TestValidateNewUser_BirthDateFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := NewUserValidator(mock.NewMockUserRepository(ctrl))

	badDates := []string{
		"2000-01-01", // wrong field order
		"1-1-2000",   // missing zero padding
		"32-01-2000", // day out of range
		"00-01-2000", // day zero
		"01-13-2000", // month out of range
		"01-00-2000", // month zero
		"01/01/2000", // wrong separator
		"01-01-200",  // three-digit year
		"01-01-20000",
		"not a date",
		"",
	}
	for _, date := range badDates {
		input := validInput()
		input.BirthDate = date

		err := v.ValidateNewUser(context.Background(), input)
		requireValidation(t, err, MsgInvalidBirthDate)
	}
}

func TestValidateNewUser_BirthDateYearRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := NewUserValidator(mock.NewMockUserRepository(ctrl))

	currentYear := time.Now().Year()
	wantMessage := fmt.Sprintf("Invalid year. Year must be in the range 1900 - %d", currentYear)

	for _, date := range []string{"01-01-1899", "01-01-1000", fmt.Sprintf("01-01-%d", currentYear+1)} {
		input := validInput()
		input.BirthDate = date

		err := v.ValidateNewUser(context.Background(), input)
		requireValidation(t, err, wantMessage)
	}
}

func TestValidateNewUser_BirthDateYearBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	repo.EXPECT().
		FindUserByEmail(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrNoUserWasFound).
		Times(2)
	v := NewUserValidator(repo)

	// both bounds are inclusive
	for _, date := range []string{"01-01-1900", fmt.Sprintf("01-01-%d", time.Now().Year())} {
		input := validInput()
		input.BirthDate = date

		assert.NoError(t, v.ValidateNewUser(context.Background(), input))
	}
}

func TestValidateNewUser_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "test@example.com").
		Return(models.User{ID: 1, Email: "test@example.com"}, nil)

	err := NewUserValidator(repo).ValidateNewUser(context.Background(), validInput())
	requireValidation(t, err, MsgEmailTaken)
}

func TestValidateNewUser_OrderedRules_SyntacticFailureSkipsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no EXPECT registered: any repository call fails the test
	v := NewUserValidator(mock.NewMockUserRepository(ctrl))

	input := validInput()
	input.Password = "short"
	input.BirthDate = "garbage"

	// password length is the first rule in the sequence, so its message wins
	err := v.ValidateNewUser(context.Background(), input)
	requireValidation(t, err, MsgPasswordTooShort)
}

func TestValidateNewUser_RepositoryFailureIsNotAValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	repo.EXPECT().
		FindUserByEmail(gomock.Any(), gomock.Any()).
		Return(models.User{}, errors.New("connection refused"))

	err := NewUserValidator(repo).ValidateNewUser(context.Background(), validInput())
	require.Error(t, err)

	var appErr *apperrors.Error
	assert.False(t, errors.As(err, &appErr), "infra failures must not be tagged validation errors")
}
