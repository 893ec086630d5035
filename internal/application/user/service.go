// Package user provides the application layer for account management
package user

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutriplan/v1/internal/domain/nutrition"
	"github.com/nutriplan/v1/internal/domain/user"
	"github.com/nutriplan/v1/internal/infrastructure/monitoring"
	"github.com/nutriplan/v1/internal/ports/inbound"
	"github.com/nutriplan/v1/internal/ports/outbound"
	apperrors "github.com/nutriplan/v1/pkg/errors"
)

const tokenLifetime = time.Hour

// Service implements account management use cases
type Service struct {
	userRepo  outbound.UserRepository
	jwtSecret []byte
	metrics   *monitoring.Metrics
	logger    *zap.Logger
}

// NewService creates a new user service
func NewService(userRepo outbound.UserRepository, jwtSecret string, metrics *monitoring.Metrics, logger *zap.Logger) *Service {
	return &Service{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		metrics:   metrics,
		logger:    logger.Named("user-service"),
	}
}

var _ inbound.UserService = (*Service)(nil)

// jwtClaims represents the access token claims
type jwtClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// Register creates a new user account
func (s *Service) Register(ctx context.Context, cmd inbound.RegisterUserCommand) (*user.User, error) {
	s.logger.Info("Registering new user", zap.String("email", cmd.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, apperrors.NewDatabaseError("check email", err)
	}
	if exists {
		return nil, apperrors.NewEmailAlreadyExistsError(cmd.Email)
	}

	newUser, err := user.NewUser(cmd.Email, cmd.FullName, cmd.Password)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, apperrors.NewDatabaseError("create user", err)
	}

	s.metrics.UsersRegistered.Inc()
	s.logger.Info("User registered",
		zap.String("user_id", newUser.ID().String()),
		zap.String("email", newUser.Email()),
	)
	return newUser, nil
}

// Login authenticates a user and issues an access token
func (s *Service) Login(ctx context.Context, email, password string) (*inbound.AuthResult, error) {
	entity, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("Login failed, unknown email", zap.String("email", email))
		return nil, apperrors.NewInvalidCredentialsError()
	}

	if err := entity.Authenticate(password); err != nil {
		s.logger.Warn("Login failed, bad password", zap.String("email", email))
		return nil, apperrors.NewInvalidCredentialsError()
	}

	if !entity.IsActive() {
		return nil, apperrors.NewForbiddenError("Account is deactivated")
	}

	entity.RecordLogin()
	if err := s.userRepo.Update(ctx, entity); err != nil {
		s.logger.Error("Failed to record login time", zap.Error(err))
	}

	expiresAt := time.Now().Add(tokenLifetime)
	token, err := s.issueToken(entity, expiresAt)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to issue token").WithCause(err)
	}

	s.logger.Info("User logged in", zap.String("user_id", entity.ID().String()))
	return &inbound.AuthResult{
		User:        entity,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// GetUser retrieves a user by ID
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	entity, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewUserNotFoundError(userID.String()).WithCause(err)
	}
	return entity, nil
}

// UpdateProfile replaces the user's nutrition profile
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, profile nutrition.Profile) (*user.User, error) {
	entity, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewUserNotFoundError(userID.String()).WithCause(err)
	}

	if err := entity.UpdateProfile(profile); err != nil {
		return nil, apperrors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.userRepo.Update(ctx, entity); err != nil {
		return nil, apperrors.NewDatabaseError("update profile", err)
	}

	s.logger.Info("Nutrition profile updated", zap.String("user_id", userID.String()))
	return entity, nil
}

// ValidateToken parses an access token and returns the user ID it carries
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return uuid.Nil, apperrors.NewUnauthorizedError("Invalid or expired token").WithCause(err)
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid {
		return uuid.Nil, apperrors.NewUnauthorizedError("Invalid or expired token")
	}
	return claims.UserID, nil
}

func (s *Service) issueToken(entity *user.User, expiresAt time.Time) (string, error) {
	claims := jwtClaims{
		UserID: entity.ID(),
		Email:  entity.Email(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   entity.ID().String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
