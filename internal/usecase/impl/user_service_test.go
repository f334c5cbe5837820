package impl

import (
	"context"
	"testing"
	"time"

	"localharvest/internal/domain/entity"
	domainerrors "localharvest/internal/domain/errors"
	"localharvest/internal/domain/repository"
	mockRepo "localharvest/internal/mocks/repository"
	mockService "localharvest/internal/mocks/service"
	"localharvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Seller(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("Str0ng!pass").Return(nil)
	fx.hasher.EXPECT().Hash("Str0ng!pass").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "farmer@example.com" && u.PasswordHash == "hashed" && u.FarmName == "Green Acres"
		})).
		Return(nil)

	user, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Fran Farmer",
		Email:    "  Farmer@Example.com ",
		Password: "Str0ng!pass",
		Role:     entity.RoleSeller,
		FarmName: "Green Acres",
	})
	require.NoError(t, err)
	assert.True(t, user.IsSeller())
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestUserService_Register_BuyerDropsFarmName(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name: "Bo Buyer", Email: "bo@example.com", Password: "Str0ng!pass", Role: entity.RoleBuyer, FarmName: "ignored",
	})
	require.NoError(t, err)
	assert.Empty(t, user.FarmName)
}

func TestUserService_Register_Rejections(t *testing.T) {
	t.Run("duplicate email", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
		fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateUser)

		_, err := fx.service.Register(ctx, usecase.RegisterInput{
			Name: "Bo", Email: "bo@example.com", Password: "Str0ng!pass", Role: entity.RoleBuyer,
		})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("weak password", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.hasher.EXPECT().ValidatePasswordStrength("short").Return(domainerrors.ErrPasswordStrength)

		_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
			Name: "Bo", Email: "bo@example.com", Password: "short", Role: entity.RoleBuyer,
		})
		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	})

	t.Run("unknown role", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
			Name: "Bo", Email: "bo@example.com", Password: "Str0ng!pass", Role: "admin",
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestUserService_Login(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "bo@example.com", PasswordHash: "hashed", Role: entity.RoleBuyer}

	fx.userRepo.EXPECT().FindByEmail(ctx, "bo@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Str0ng!pass", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user.ID, "buyer").Return("signed.jwt", nil)
	fx.tokenService.EXPECT().GetAccessTokenDuration().Return(time.Hour)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "BO@example.com", Password: "Str0ng!pass"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", out.AccessToken)
	assert.Same(t, user, out.User)
	assert.WithinDuration(t, time.Now().Add(time.Hour), out.ExpiresAt, time.Minute)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), PasswordHash: "hashed"}

		fx.userRepo.EXPECT().FindByEmail(ctx, "bo@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "bo@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
