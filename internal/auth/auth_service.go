package auth

import (
	"context"
	"strconv"
	"strings"
	"time"

	autherrors "github.com/bruno-marques98/CoreCrewApp/internal/auth/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/events"
	"github.com/bruno-marques98/CoreCrewApp/internal/messaging/kafka"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/dberror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const loginAction = "LOGIN"

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResult, error)
	Me(ctx context.Context, userID uint) (UserResponse, error)
	// EnsureAdmin creates an Admin account unless the email is taken and
	// reports whether it did.
	EnsureAdmin(ctx context.Context, email, password string) (bool, error)
}

type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	tokens TokenConfig
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository, tokens TokenConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outbox,
		tokens: tokens,
		now:    func() time.Time { return time.Now().UTC() },
		logger: l,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	email := normalizeEmail(req.Email)
	log := s.logger.With(zap.String("request_id", contextutil.GetRequestID(ctx)), zap.String("email", email))

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if dberror.IsNotFound(err) {
			log.Warn("login with unknown email")
			return LoginResult{}, autherrors.ErrInvalidCredentials
		}
		log.Error("find user failed", zap.Error(err))
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn("login with wrong password", zap.Uint("user_id", user.ID))
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	now := s.now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).TouchLastLogin(ctx, user.ID, now); err != nil {
			return err
		}
		return s.enqueueLoginAudit(ctx, tx, user)
	})
	if err != nil {
		log.Error("record login failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return LoginResult{}, err
	}
	user.LastLoginAt = &now

	expiresAt := now.Add(s.tokens.TTL)
	token, err := s.generateToken(user, now, expiresAt)
	if err != nil {
		log.Error("sign access token failed", zap.Error(err))
		return LoginResult{}, autherrors.ErrTokenGenerationFailed
	}

	log.Info("user logged in", zap.Uint("user_id", user.ID), zap.String("role", user.Role))
	return LoginResult{
		User:        mapToResponse(*user),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *service) enqueueLoginAudit(ctx context.Context, tx *gorm.DB, user *User) error {
	recordID := int64(user.ID)
	payload := events.NewAuditRecorded(loginAction, User{}.TableName(), &recordID, user.Email, "")
	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		User{}.TableName(),
		strconv.FormatUint(uint64(user.ID), 10),
		events.AuditRecordedEventType,
		events.AuditTopic,
		payload,
	)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) Me(ctx context.Context, userID uint) (UserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if dberror.IsNotFound(err) {
			return UserResponse{}, autherrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return mapToResponse(*user), nil
}

func (s *service) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	email = normalizeEmail(email)

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !dberror.IsNotFound(err) {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	user := &User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         rbac.RoleAdmin,
		Version:      1,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if dberror.IsUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}

	s.logger.Info("bootstrap admin created", zap.Uint("user_id", user.ID), zap.String("email", email))
	return true, nil
}

func (s *service) generateToken(user *User, issuedAt, expiresAt time.Time) (string, error) {
	claims := domain.AccessClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.tokens.Secret))
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		UserID:      u.ID,
		Email:       u.Email,
		Role:        u.Role,
		LastLoginAt: request.FormatOptionalTimestamp(u.LastLoginAt),
	}
}
