// Package validators implements the field-level input validation rules of
// the registration flow. Rules are independent predicates applied in a fixed
// sequence; the first failing rule determines the reported error and no
// aggregation across rules takes place.
package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/osouza/go-user-accounts/internal/apperrors"
	"github.com/osouza/go-user-accounts/internal/store"
	"github.com/osouza/go-user-accounts/models"
)

// Client-facing messages of the registration rules. The email-uniqueness
// message is also reused by the service layer when the database-level unique
// constraint catches a race the pre-check missed.
const (
	MsgPasswordTooShort    = "Password must be at least 6 characters long"
	MsgPasswordComposition = "Password must contain at least one letter and one number"
	MsgInvalidBirthDate    = "Invalid birth date. Birth date must be in the format DD-MM-YYYY"
	MsgEmailTaken          = "Email already taken, please use a different email"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 6

// minBirthYear is the lower bound of the accepted birth year range. The
// upper bound is the current calendar year, evaluated at request time.
const minBirthYear = 1900

var (
	letterPattern = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern  = regexp.MustCompile(`[0-9]`)

	// birthDatePattern accepts DD-MM-YYYY with day 01-31 and month 01-12.
	// Day validity is not cross-checked against month length.
	birthDatePattern = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])-(0[1-9]|1[012])-(\d{4})$`)
)

// userValidator implements [UserValidator]. The repository dependency serves
// only the email-uniqueness rule, which is the single rule requiring I/O and
// therefore runs last.
type userValidator struct {
	users store.UserRepository
}

// NewUserValidator constructs a [UserValidator] backed by the given
// repository.
func NewUserValidator(users store.UserRepository) UserValidator {
	return &userValidator{users: users}
}

// ValidateNewUser runs the registration rules in order: password length,
// password composition, birth date format, birth year range, email
// uniqueness. Each failure is an [apperrors.Validation] (code 400) carrying
// the rule's message.
func (v *userValidator) ValidateNewUser(ctx context.Context, input models.UserInput) error {
	if err := passwordLength(input.Password); err != nil {
		return err
	}
	if err := passwordComposition(input.Password); err != nil {
		return err
	}
	if err := birthDateFormat(input.BirthDate); err != nil {
		return err
	}
	if err := birthDateYear(input.BirthDate); err != nil {
		return err
	}
	return v.emailAvailable(ctx, input.Email)
}

// passwordLength rejects passwords shorter than six characters.
func passwordLength(password string) error {
	if len(password) < minPasswordLength {
		return apperrors.Validation(MsgPasswordTooShort)
	}
	return nil
}

// passwordComposition requires at least one letter and one digit; any other
// characters are permitted.
func passwordComposition(password string) error {
	if !letterPattern.MatchString(password) || !digitPattern.MatchString(password) {
		return apperrors.Validation(MsgPasswordComposition)
	}
	return nil
}

// birthDateFormat rejects birth dates not matching the literal DD-MM-YYYY
// pattern, including malformed separators and wrong digit counts.
func birthDateFormat(birthDate string) error {
	if !birthDatePattern.MatchString(birthDate) {
		return apperrors.Validation(MsgInvalidBirthDate)
	}
	return nil
}

// birthDateYear splits the already-format-valid date on "-" and rejects
// years below 1900 or past the current calendar year.
func birthDateYear(birthDate string) error {
	parts := strings.Split(birthDate, "-")
	year, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return apperrors.Validation(MsgInvalidBirthDate)
	}

	currentYear := time.Now().Year()
	if year < minBirthYear || year > currentYear {
		return apperrors.Validation(yearRangeMessage(currentYear))
	}
	return nil
}

// yearRangeMessage renders the year-range failure message for the given
// upper bound.
func yearRangeMessage(currentYear int) string {
	return fmt.Sprintf("Invalid year. Year must be in the range %d - %d", minBirthYear, currentYear)
}

// emailAvailable rejects emails already present in the repository. This is a
// best-effort pre-check: the unique constraint of the database remains the
// final authority under concurrent registrations.
func (v *userValidator) emailAvailable(ctx context.Context, email string) error {
	_, err := v.users.FindUserByEmail(ctx, email)
	if err == nil {
		return apperrors.Validation(MsgEmailTaken)
	}
	if errors.Is(err, store.ErrNoUserWasFound) {
		return nil
	}
	return fmt.Errorf("email uniqueness check failed: %w", err)
}
