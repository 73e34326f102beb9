package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"stakegulf-cms/config"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type TokenService interface {
	Generate(userID uint) (string, error)
	// Parse returns the user id carried by a valid token, ErrTokenExpired or ErrTokenInvalid.
	Parse(token string) (uint, error)
}

type Claims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

type jwtTokenService struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

func NewJWTTokenService(cfg config.JWTConfig) TokenService {
	return &jwtTokenService{secret: cfg.Secret, expiration: cfg.Expiration, now: time.Now}
}

func (s *jwtTokenService) Generate(userID uint) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *jwtTokenService) Parse(tokenString string) (uint, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !token.Valid || claims.UserID == 0 {
		return 0, ErrTokenInvalid
	}
	return claims.UserID, nil
}
