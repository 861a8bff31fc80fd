package jwt

import (
	"Food-Wastage-Management/domain"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const RoleOperator = "operator"

type (
	// JWTService mints and checks operator tokens. With an empty secret the
	// service is disabled and every route stays open.
	JWTService interface {
		Enabled() bool
		GenerateOperatorToken(subject string, ttl time.Duration) (string, error)
		ValidateOperatorToken(token string) (string, error)
	}

	jwtOperatorClaim struct {
		Role string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func NewJWTService(secretKey string) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    "FOOD-WASTAGE",
	}
}

func (j *jwtService) Enabled() bool {
	return j.secretKey != ""
}

func (j *jwtService) GenerateOperatorToken(subject string, ttl time.Duration) (string, error) {
	if !j.Enabled() {
		return "", fmt.Errorf("JWT_SECRET is not configured")
	}
	now := time.Now()
	claims := jwtOperatorClaim{
		RoleOperator,
		jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

// ValidateOperatorToken returns the token subject.
func (j *jwtService) ValidateOperatorToken(token string) (string, error) {
	t_Token, err := jwt.ParseWithClaims(token, &jwtOperatorClaim{}, j.parseToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtOperatorClaim)
	if claims.Issuer != j.issuer {
		return "", domain.ErrTokenInvalid
	}
	if claims.Role != RoleOperator {
		return "", domain.ErrNotOperator
	}
	return claims.Subject, nil
}
