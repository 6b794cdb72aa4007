package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userrepos "github.com/analysisdata/graph-backend/internal/data/repos/user"
	types "github.com/analysisdata/graph-backend/internal/domain"
	"github.com/analysisdata/graph-backend/internal/pkg/errors"
	"github.com/analysisdata/graph-backend/internal/platform/ctxutil"
	"github.com/analysisdata/graph-backend/internal/platform/logger"
)

// JWTClaims carries the caller's id (as subject) and role.
type JWTClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	RegisterUser(ctx context.Context, user *types.User) error
	// LoginUser returns a signed access token for valid credentials.
	// Unknown usernames and wrong passwords are indistinguishable to the
	// caller.
	LoginUser(ctx context.Context, username, password string) (string, *types.User, error)
	// SetContextFromToken validates the token and attaches the caller's
	// request data to the context. An empty token passes through
	// unchanged; an invalid one is an error.
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     userrepos.UserRepo
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo userrepos.UserRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
) AuthService {
	return &authService{
		db:           db,
		log:          log.With("service", "AuthService"),
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) error {
	user.Username = strings.TrimSpace(strings.ToLower(user.Username))
	if user.Username == "" || user.Password == "" {
		return errors.ErrInvalidPassword
	}

	existing, err := as.userRepo.GetByUsername(ctx, nil, user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("username %q already taken", user.Username)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.ID = uuid.New()
	user.Password = string(hashed)
	return as.userRepo.Create(ctx, nil, []*types.User{user})
}

func (as *authService) LoginUser(ctx context.Context, username, password string) (string, *types.User, error) {
	username = strings.TrimSpace(strings.ToLower(username))

	user, err := as.userRepo.GetByUsername(ctx, nil, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, errors.ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidPassword
	}

	token, err := as.generateAccessToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate access token: %w", err)
	}
	return token, user, nil
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, nil
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return ctx, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*JWTClaims)
	if !ok || !parsed.Valid {
		return ctx, errors.ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, fmt.Errorf("invalid user id in token: %w", err)
	}

	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{
		UserID: userID,
		Role:   claims.Role,
	}), nil
}
