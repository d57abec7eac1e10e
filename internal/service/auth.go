package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/examportal/backend/internal/config"
	"github.com/examportal/backend/internal/db"
	"github.com/examportal/backend/internal/model"
)

const (
	refreshCookieName = "refreshToken"
	refreshCookiePath = "/refreshToken"

	// Hashing cost the user records have always been written with.
	passwordHashCost = 12

	birthdayLayout = "2006-01-02"
)

var ErrMisconfigured = errors.New("auth config invalid")

type CookieConfig struct {
	Name   string
	Path   string
	MaxAge int
}

type AuthService struct {
	users      UserStore
	tokens     TokenStore
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	cookieCfg  CookieConfig
}

func NewAuthService(users UserStore, tokens TokenStore, cfg config.AuthConfig) (*AuthService, error) {
	if cfg.AccessTokenSecret == "" {
		return nil, fmt.Errorf("%w: ACCESS_TOKEN_SECRET is required", ErrMisconfigured)
	}

	accessTTL, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWT_EXPIRATION", ErrMisconfigured)
	}

	refreshTTL, err := time.ParseDuration(cfg.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWT_REFRESH_EXPIRATION", ErrMisconfigured)
	}

	return &AuthService{
		users:      users,
		tokens:     tokens,
		jwtSecret:  []byte(cfg.AccessTokenSecret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		cookieCfg: CookieConfig{
			Name:   refreshCookieName,
			Path:   refreshCookiePath,
			MaxAge: int(refreshTTL.Seconds()),
		},
	}, nil
}

func (s *AuthService) CookieConfig() CookieConfig {
	return s.cookieCfg
}

// Signup creates a user and issues an immediate access token. The existence
// checks run before the insert, but a concurrent signup can still race past
// them; the unique constraints on email and phone catch that and it surfaces
// as the same conflict response.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (*model.SignupResponse, error) {
	existing, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil && db.IsNoRows(err) {
		existing, err = s.users.GetUserByPhone(ctx, req.Phone)
	}
	if err != nil && !db.IsNoRows(err) {
		return nil, model.WrapHTTPError(http.StatusInternalServerError,
			"Signing up failed, please try again later.", err)
	}
	if existing != nil {
		return nil, model.NewHTTPError(http.StatusUnprocessableEntity,
			"User exists already, please login instead.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
	if err != nil {
		return nil, model.WrapHTTPError(http.StatusInternalServerError,
			"Could not create user, please try again.", err)
	}

	birthday, err := time.Parse(birthdayLayout, req.Birthday)
	if err != nil {
		return nil, model.NewHTTPError(http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data.")
	}

	role := model.Role(req.Role)
	if role == "" {
		role = model.RoleUser
	}

	user, err := s.users.CreateUser(ctx, &model.User{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: string(hash),
		Grade:        req.Grade,
		Birthday:     birthday,
		Role:         role,
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, model.NewHTTPError(http.StatusUnprocessableEntity,
				"User exists already, please login instead.")
		}
		return nil, model.WrapHTTPError(http.StatusInternalServerError,
			"Signing up failed, please try again later.", err)
	}

	token, err := s.generateAccessToken(user.ID)
	if err != nil {
		return nil, model.WrapHTTPError(http.StatusInternalServerError,
			"Signing up failed, please try again later.", err)
	}

	return &model.SignupResponse{UserID: user.ID, Token: token}, nil
}

// Login matches the identifier against the email column first, then against
// phone, so users can log in with either.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil && db.IsNoRows(err) {
		user, err = s.users.GetUserByPhone(ctx, req.Email)
	}
	if err != nil {
		if db.IsNoRows(err) {
			return nil, model.NewHTTPError(http.StatusForbidden,
				"Invalid credentials, could not log you in.")
		}
		return nil, model.WrapHTTPError(http.StatusInternalServerError,
			"Logging in failed, please try again later.", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.NewHTTPError(http.StatusForbidden,
			"Invalid credentials, could not log you in.")
	}

	token, err := s.generateAccessToken(user.ID)
	if err != nil {
		return nil, model.WrapHTTPError(http.StatusInternalServerError,
			"Logging in failed, please try again later.", err)
	}

	refreshToken, refreshHash, err := newRefreshToken()
	if err != nil {
		return nil, model.WrapHTTPError(http.StatusInternalServerError,
			"Logging in failed, please try again later.", err)
	}

	if err := s.tokens.InsertRefreshToken(ctx, user.ID, refreshHash, time.Now().Add(s.refreshTTL)); err != nil {
		return nil, model.WrapHTTPError(http.StatusInternalServerError,
			"Logging in failed, please try again later.", err)
	}

	return &model.LoginResponse{
		UserID:       user.ID,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a still-valid refresh token for a fresh access token.
// The refresh token itself is not rotated; it stays usable until it expires.
// An expired token is deleted on first sight so it cannot be replayed.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*model.RefreshResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, model.NewHTTPError(http.StatusForbidden, "Refresh Token is required!")
	}

	record, err := s.tokens.GetRefreshTokenByHash(ctx, hashRefreshToken(refreshToken))
	if err != nil {
		if db.IsNoRows(err) {
			return nil, model.NewHTTPError(http.StatusForbidden,
				"Refresh token is not in database!")
		}
		return nil, model.WrapHTTPError(http.StatusInternalServerError,
			"Refresh token failed, please try again later.", err)
	}

	if time.Now().After(record.ExpiresAt) {
		_ = s.tokens.DeleteRefreshToken(ctx, record.ID)
		return nil, model.NewHTTPError(http.StatusForbidden,
			"Refresh token was expired. Please make a new login request")
	}

	accessToken, err := s.generateAccessToken(record.UserID)
	if err != nil {
		return nil, model.WrapHTTPError(http.StatusInternalServerError,
			"Refresh token failed, please try again later.", err)
	}

	return &model.RefreshResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout deletes the stored refresh token, if any. Safe to call with an
// empty or unknown token.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return nil
	}
	if err := s.tokens.DeleteRefreshTokenByHash(ctx, hashRefreshToken(refreshToken)); err != nil {
		return model.WrapHTTPError(http.StatusInternalServerError,
			"Log out failed, please try again later.", err)
	}
	return nil
}

// ParseAccessToken verifies signature and expiry and returns the identity
// carried in the subject claim.
func (s *AuthService) ParseAccessToken(tokenStr string) (*model.AuthUser, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid subject claim: %w", err)
	}

	return &model.AuthUser{ID: userID}, nil
}

func (s *AuthService) generateAccessToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func newRefreshToken() (string, string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}
	token := base64.RawURLEncoding.EncodeToString(raw)
	return token, hashRefreshToken(token), nil
}

// Refresh tokens are stored hashed so a leaked table does not leak usable
// credentials. Lookup is by hash of the presented token.
func hashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
