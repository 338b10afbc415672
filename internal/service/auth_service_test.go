package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Navin2k4/UrbanUplift-sub000/internal/auth"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/errors"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func TestAuthService_RegisterUser(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		attrs         RoleAttributes
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedRole  model.Role
	}{
		{
			name:  "successful citizen registration",
			email: "new@example.com",
			attrs: CitizenAttrs{},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: model.RoleCitizen,
		},
		{
			name:  "successful ngo registration with attributes",
			email: "ngo@example.com",
			attrs: NGOAttrs{OrganizationID: "ORG-9", RegistrationNumber: "REG-42"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ngo@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: model.RoleNGO,
		},
		{
			name:  "duplicate email in a different role conflicts",
			email: "taken@example.com",
			attrs: GovtAttrs{EmployeeID: "E-1", Department: "Roads"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "taken@example.com").
					Return(&model.User{Email: "taken@example.com", Role: model.RoleCitizen}, nil)
			},
			expectedError: errors.ErrDuplicateEmail,
		},
		{
			name:          "ngo registration missing required attributes",
			email:         "ngo2@example.com",
			attrs:         NGOAttrs{OrganizationID: "ORG-9"},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: errors.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
			user, err := service.RegisterUser(context.Background(), "Test User", tt.email, "password123", tt.attrs)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				// no record is created on failure
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.expectedRole, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, "password123", user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_AuthenticateUser(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)
	citizen := func() *model.User {
		return &model.User{
			ID:           uuid.New(),
			Email:        "citizen@example.com",
			Name:         "Asha",
			PasswordHash: string(hashed),
			Role:         model.RoleCitizen,
		}
	}

	tests := []struct {
		name          string
		role          model.Role
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			role:     model.RoleCitizen,
			email:    "citizen@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "citizen@example.com").Return(citizen(), nil)
				m.On("UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:     "unknown email",
			role:     model.RoleCitizen,
			email:    "ghost@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "role mismatch",
			role:     model.RoleGovt,
			email:    "citizen@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "citizen@example.com").Return(citizen(), nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			role:     model.RoleCitizen,
			email:    "citizen@example.com",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "citizen@example.com").Return(citizen(), nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
			token, user, err := service.AuthenticateUser(context.Background(), tt.role, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.email, user.Email)
				assert.NotNil(t, user.LastLoginAt)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// Role mismatch and wrong password must be indistinguishable to the caller.
func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)
	user := &model.User{ID: uuid.New(), Email: "u@example.com", PasswordHash: string(hashed), Role: model.RoleCitizen}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "u@example.com").Return(user, nil)
	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))

	_, _, roleErr := service.AuthenticateUser(context.Background(), model.RoleNSS, "u@example.com", "password123")
	_, _, passErr := service.AuthenticateUser(context.Background(), model.RoleCitizen, "u@example.com", "nope")

	assert.Equal(t, roleErr, passErr)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)
	user := &model.User{ID: uuid.New(), Email: "u@example.com", PasswordHash: string(hashed), Role: model.RoleNGO}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "u@example.com").Return(user, nil)
	mockRepo.On("UpdateLastLogin", mock.Anything, user.ID, mock.Anything).Return(nil)

	jwtService := auth.NewJWTService("test-secret")
	service := NewAuthService(mockRepo, jwtService)

	token, _, err := service.AuthenticateUser(context.Background(), model.RoleNGO, "u@example.com", "password123")
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, model.RoleNGO, claims.Role)
}
