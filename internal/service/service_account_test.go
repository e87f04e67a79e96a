package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/osouza/go-user-accounts/internal/apperrors"
	"github.com/osouza/go-user-accounts/internal/logger"
	"github.com/osouza/go-user-accounts/internal/mock"
	"github.com/osouza/go-user-accounts/internal/store"
	"github.com/osouza/go-user-accounts/internal/validators"
	"github.com/osouza/go-user-accounts/models"
)

func testAccountService(repo store.UserRepository) AccountService {
	return NewAccountService(repo, validators.NewUserValidator(repo), logger.Nop())
}

func registrationInput() models.UserInput {
	return models.UserInput{
		Name:      "User Test",
		Email:     "new@example.com",
		Password:  "abc123",
		BirthDate: "15-06-1990",
	}
}

func TestAccountService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := testAccountService(repo)

	// uniqueness pre-check issued by the validator
	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "new@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	var stored models.User
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			user.ID = 10
			return user, nil
		})

	created, err := svc.CreateUser(context.Background(), registrationInput())
	require.NoError(t, err)

	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, "User Test", created.Name)
	assert.Equal(t, "15-06-1990", created.BirthDate)
	assert.Empty(t, created.Password, "credential must not leave the service layer")
	assert.NotNil(t, created.Addresses)

	assert.NotEqual(t, "abc123", stored.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("abc123")))
}

func TestAccountService_CreateUser_ValidationFailureSkipsPersistence(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := testAccountService(repo)

	input := registrationInput()
	input.Password = "short"

	_, err := svc.CreateUser(context.Background(), input)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, validators.MsgPasswordTooShort, appErr.Message)
}

func TestAccountService_CreateUser_ConcurrentRegistrationRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := testAccountService(repo)

	// the pre-check passes, the insert then hits the unique constraint
	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "new@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.CreateUser(context.Background(), registrationInput())

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, validators.MsgEmailTaken, appErr.Message)
}

func TestAccountService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("abc123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := testAccountService(repo)

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "user@example.com").
		Return(models.User{ID: 3, Name: "User Test", Email: "user@example.com", Password: string(hash)}, nil)

	found, err := svc.Login(context.Background(), "user@example.com", "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(3), found.ID)
	assert.Empty(t, found.Password)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := testAccountService(repo)

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "missing@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(context.Background(), "missing@example.com", "abc123")

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "User with email missing@example.com not found", appErr.Message)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("abc123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := testAccountService(repo)

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "user@example.com").
		Return(models.User{ID: 3, Email: "user@example.com", Password: string(hash)}, nil)

	_, err = svc.Login(context.Background(), "user@example.com", "wrong-pass-1")

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, MsgWrongCredentials, appErr.Message)
}

func TestAccountService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := testAccountService(repo)

	repo.EXPECT().
		FindUserByID(gomock.Any(), int64(5)).
		Return(models.User{
			ID: 5, Name: "User Test", Email: "user@example.com", Password: "hash",
			Addresses: []models.Address{{ID: 1, UserID: 5, City: "Natal", State: "RN"}},
		}, nil)

	found, err := svc.GetUser(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), found.ID)
	assert.Len(t, found.Addresses, 1)
	assert.Empty(t, found.Password)
}

func TestAccountService_GetUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := testAccountService(repo)

	repo.EXPECT().
		FindUserByID(gomock.Any(), int64(404)).
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetUser(context.Background(), 404)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, MsgUserNotFound, appErr.Message)
}

func TestAccountService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := testAccountService(repo)

	window := []models.User{
		{ID: 2, Name: "Alice", Email: "alice@example.com", Password: "hash"},
		{ID: 1, Name: "Bob", Email: "bob@example.com", Password: "hash"},
	}
	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(5), nil)
	repo.EXPECT().ListUsers(gomock.Any(), 0, 2).Return(window, nil)

	page, err := svc.ListUsers(context.Background(), 0, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(5), page.TotalCount)
	require.Len(t, page.Users, 2)
	assert.Equal(t, "Alice", page.Users[0].Name)
	assert.Empty(t, page.Users[0].Password)
	assert.True(t, page.HasMoreUsers)
}

func TestAccountService_ListUsers_LastWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := testAccountService(repo)

	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(5), nil)
	repo.EXPECT().ListUsers(gomock.Any(), 3, 10).Return([]models.User{
		{ID: 4, Name: "Dave"},
		{ID: 5, Name: "Eve"},
	}, nil)

	page, err := svc.ListUsers(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.False(t, page.HasMoreUsers)
	assert.Len(t, page.Users, 2)
}

func TestAccountService_ListUsers_ArgumentGuards(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no EXPECT registered: argument guards must run before any read
	svc := testAccountService(mock.NewMockUserRepository(ctrl))

	tests := []struct {
		name       string
		offset     int
		limit      int
		wantDetail string
	}{
		{name: "negative offset", offset: -1, limit: 10, wantDetail: DetailInvalidOffset},
		{name: "zero limit", offset: 0, limit: 0, wantDetail: DetailInvalidLimit},
		{name: "negative limit", offset: 0, limit: -3, wantDetail: DetailInvalidLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ListUsers(context.Background(), tt.offset, tt.limit)

			var appErr *apperrors.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.Code)
			assert.Equal(t, apperrors.UnknownMessage, appErr.Message)
			assert.Equal(t, tt.wantDetail, appErr.AdditionalInfo)
		})
	}
}

func TestAccountService_ListUsers_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := testAccountService(repo)

	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(0), errors.New("connection refused"))

	_, err := svc.ListUsers(context.Background(), 0, 10)
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf("counting users failed: %s", "connection refused"), err.Error())
}
