package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-vms/internal/auth/errors"
	"go-vms/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	formFlagPrefix = "form_flag:"
	formFlagTTL    = 5 * time.Minute
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (LoginResponse, error)

	// SetFormFlag arms the one-shot "open the registration form" flag used
	// by the QR login path. ConsumeFormFlag reads and clears it atomically;
	// later reads report false.
	SetFormFlag(ctx context.Context, username string)
	ConsumeFormFlag(ctx context.Context, username string) bool
}

type service struct {
	repo Repository
	rdb  *redis.Client
}

func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{repo: repo, rdb: rdb}
}

func (s *service) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}

	if !passwordMatches(user.Password, password) {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	return LoginResponse{Username: user.Username}, nil
}

func (s *service) SetFormFlag(ctx context.Context, username string) {
	if err := s.rdb.SetNX(ctx, formFlagPrefix+username, "1", formFlagTTL).Err(); err != nil {
		// The flag is a convenience; losing it must not fail the login.
		contextutil.GetLogger(ctx, zap.L()).Warn("failed to set form flag",
			zap.String("username", username), zap.Error(err))
	}
}

func (s *service) ConsumeFormFlag(ctx context.Context, username string) bool {
	val, err := s.rdb.GetDel(ctx, formFlagPrefix+username).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			contextutil.GetLogger(ctx, zap.L()).Warn("failed to consume form flag",
				zap.String("username", username), zap.Error(err))
		}
		return false
	}
	return val != ""
}

// passwordMatches handles both bcrypt-hashed rows and legacy plaintext ones
// the migration has not reached yet.
func passwordMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return stored == given
}
