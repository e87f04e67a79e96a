package validators

import (
	"context"

	"github.com/osouza/go-user-accounts/models"
)

// UserValidator checks raw create-user input before it reaches persistence.
type UserValidator interface {
	// ValidateNewUser applies every registration rule in fixed order and
	// returns the error of the first failing rule. A nil return means the
	// input passed all rules.
	ValidateNewUser(ctx context.Context, input models.UserInput) error
}
