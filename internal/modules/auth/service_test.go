package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"morent/internal/domain"
	"morent/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func adminUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &domain.User{
		ID:           1,
		Email:        "admin@morent.app",
		PasswordHash: string(hash),
		Name:         "Администратор",
		Role:         domain.RoleAdmin,
	}
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	service := NewService(users, tokens)

	users.On("GetByEmail", mock.Anything, "admin@morent.app").Return(adminUser(t, "admin123"), nil)
	tokens.On("GenerateToken", int64(1), "admin").Return("signed-token", nil)

	resp, err := service.Login(context.Background(), LoginRequest{
		Email:    "admin@morent.app",
		Password: "admin123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "admin@morent.app", resp.User.Email)
	assert.Equal(t, "admin", resp.User.Role)
	tokens.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	service := NewService(users, tokens)

	users.On("GetByEmail", mock.Anything, "admin@morent.app").Return(adminUser(t, "admin123"), nil)

	resp, err := service.Login(context.Background(), LoginRequest{
		Email:    "admin@morent.app",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, resp)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	service := NewService(users, tokens)

	users.On("GetByEmail", mock.Anything, "ghost@morent.app").Return(nil, repository.ErrNotFound)

	resp, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@morent.app",
		Password: "admin123",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, resp)
}
