package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/repairshop/internal/domain"
	"github.com/GlebRadaev/repairshop/pkg/auth"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

const tokenTTL = 12 * time.Hour

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	admins      map[string]struct{}
	now         func() time.Time
}

// New builds the service. Users registering with one of adminLogins get the
// admin role, everyone else is a technician.
func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, adminLogins []string) *Service {
	admins := make(map[string]struct{}, len(adminLogins))
	for _, login := range adminLogins {
		if login = strings.TrimSpace(login); login != "" {
			admins[login] = struct{}{}
		}
	}
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		admins:      admins,
		now:         time.Now,
	}
}

func (s *Service) Register(ctx context.Context, login, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	role := domain.RoleTechnician
	if _, ok := s.admins[login]; ok {
		role = domain.RoleAdmin
	}
	user, err := s.userRepo.Create(ctx, &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
		Role:         role,
	})
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login), zap.String("role", string(role)))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	token, err := s.jwtService.GenerateJWT(user.ID, string(user.Role), s.now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
