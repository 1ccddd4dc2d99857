package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"staymarket/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 1 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type stubTokenGenerator struct{}

func (stubTokenGenerator) GenerateToken(userID int64, username string) (string, error) {
	return "test-token", nil
}

func TestService_Register_HashesPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(mockUsers, stubTokenGenerator{})

	res, err := svc.Register(context.Background(), RegisterRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "password123",
		FirstName: "Alice",
		LastName:  "Doe",
	})

	assert.NoError(t, err)
	assert.Equal(t, "test-token", res.Token)
	assert.NotEqual(t, "password123", res.User.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("password123")))
}

func TestService_Register_RejectsTakenUsername(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{ID: 1, Username: "alice"}, nil)

	svc := NewService(mockUsers, stubTokenGenerator{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_RejectsTakenEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByUsername", mock.Anything, "bob").Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("GetByEmail", mock.Anything, "alice@example.com").Return(&domain.User{ID: 1}, nil)

	svc := NewService(mockUsers, stubTokenGenerator{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &domain.User{ID: 1, Username: "alice", PasswordHash: string(hash)}

	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(user, nil)
	mockUsers.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(mockUsers, stubTokenGenerator{})

	t.Run("correct password", func(t *testing.T) {
		res, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "password123"})
		assert.NoError(t, err)
		assert.Equal(t, "test-token", res.Token)
		assert.Equal(t, int64(1), res.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "password123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_Me_NotFound(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(mockUsers, stubTokenGenerator{})

	_, err := svc.Me(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
