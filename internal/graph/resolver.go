package graph

import (
	"context"

	"github.com/osouza/go-user-accounts/internal/apperrors"
	"github.com/osouza/go-user-accounts/internal/service"
	"github.com/osouza/go-user-accounts/models"
)

// MsgUnauthorized is the client-facing message for operations that require a
// verified identity when none is present.
const MsgUnauthorized = "Unauthorized operation"

// Resolver is the root resolver for both Query and Mutation. It owns no
// state beyond the service layer it delegates to.
type Resolver struct {
	services *service.Services
}

// NewResolver constructs the root resolver over the given services.
func NewResolver(services *service.Services) *Resolver {
	return &Resolver{services: services}
}

// userInput mirrors the UserInput GraphQL input object.
type userInput struct {
	Name      string
	Email     string
	Password  string
	BirthDate string
}

// loginInput mirrors the LoginInput GraphQL input object.
type loginInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// Hello is a liveness probe for the query surface.
func (r *Resolver) Hello() *string {
	s := "Hello world!"
	return &s
}

// GetUser resolves a single account by primary key. Requires a verified
// identity.
func (r *Resolver) GetUser(ctx context.Context, args struct{ ID int32 }) (*userResolver, error) {
	if err := requireAuth(ctx); err != nil {
		return nil, err
	}

	user, err := r.services.Accounts.GetUser(ctx, int64(args.ID))
	if err != nil {
		return nil, err
	}

	return &userResolver{user: user}, nil
}

// GetManyUsers resolves one pagination window ordered by name ascending.
// Requires a verified identity.
func (r *Resolver) GetManyUsers(ctx context.Context, args struct {
	Offset *int32
	Limit  *int32
}) (*userPaginationResolver, error) {
	if err := requireAuth(ctx); err != nil {
		return nil, err
	}

	offset := 0
	if args.Offset != nil {
		offset = int(*args.Offset)
	}
	// the schema default covers an omitted argument; an explicit null
	// still reaches us as a nil pointer
	limit := DefaultLimit
	if args.Limit != nil {
		limit = int(*args.Limit)
	}

	page, err := r.services.Accounts.ListUsers(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	return &userPaginationResolver{page: page}, nil
}

// CreateUser registers a new account. Requires a verified identity.
func (r *Resolver) CreateUser(ctx context.Context, args struct{ Data userInput }) (*userResolver, error) {
	if err := requireAuth(ctx); err != nil {
		return nil, err
	}

	user, err := r.services.Accounts.CreateUser(ctx, models.UserInput{
		Name:      args.Data.Name,
		Email:     args.Data.Email,
		Password:  args.Data.Password,
		BirthDate: args.Data.BirthDate,
	})
	if err != nil {
		return nil, err
	}

	return &userResolver{user: user}, nil
}

// Login authenticates by email and password and issues a signed token whose
// lifetime depends on the rememberMe flag.
func (r *Resolver) Login(ctx context.Context, args struct{ Data loginInput }) (*authenticationResolver, error) {
	user, err := r.services.Accounts.Login(ctx, args.Data.Email, args.Data.Password)
	if err != nil {
		return nil, err
	}

	token, err := r.services.Tokens.Issue(ctx, user, args.Data.RememberMe)
	if err != nil {
		return nil, err
	}

	return &authenticationResolver{user: user, token: token.SignedString}, nil
}

// requireAuth gates protected operations on the per-request authentication
// context.
func requireAuth(ctx context.Context) error {
	if !AuthFromContext(ctx).Authenticated() {
		return apperrors.Authorization(MsgUnauthorized)
	}
	return nil
}

type userResolver struct {
	user models.User
}

func (u *userResolver) ID() int32         { return int32(u.user.ID) }
func (u *userResolver) Name() string      { return u.user.Name }
func (u *userResolver) Email() string     { return u.user.Email }
func (u *userResolver) BirthDate() string { return u.user.BirthDate }

func (u *userResolver) Addresses() []*addressResolver {
	addresses := make([]*addressResolver, 0, len(u.user.Addresses))
	for _, a := range u.user.Addresses {
		addresses = append(addresses, &addressResolver{address: a})
	}
	return addresses
}

type addressResolver struct {
	address models.Address
}

func (a *addressResolver) ZipCode() int32        { return int32(a.address.ZipCode) }
func (a *addressResolver) Street() string        { return a.address.Street }
func (a *addressResolver) StreetNumber() int32   { return int32(a.address.StreetNumber) }
func (a *addressResolver) City() string          { return a.address.City }
func (a *addressResolver) State() string         { return a.address.State }
func (a *addressResolver) Complement() *string   { return a.address.Complement }
func (a *addressResolver) Neighborhood() *string { return a.address.Neighborhood }

type userPaginationResolver struct {
	page models.UserPage
}

func (p *userPaginationResolver) TotalCount() int32 { return int32(p.page.TotalCount) }

func (p *userPaginationResolver) Users() []*userResolver {
	users := make([]*userResolver, 0, len(p.page.Users))
	for _, u := range p.page.Users {
		users = append(users, &userResolver{user: u})
	}
	return users
}

func (p *userPaginationResolver) HasMoreUsers() *bool {
	hasMore := p.page.HasMoreUsers
	return &hasMore
}

type authenticationResolver struct {
	user  models.User
	token string
}

func (a *authenticationResolver) User() *userResolver { return &userResolver{user: a.user} }
func (a *authenticationResolver) Token() string       { return a.token }
