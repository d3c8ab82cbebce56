package jwtPkg

import (
	"FinanceTracker/internal/entity"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const SecretEnvKey = "JWT_ACCESS_TOKEN_SECRET"

var (
	ErrMissingSecret   = errors.New("JWT secret not configured")
	ErrEmptyHeader     = errors.New("empty Authorization header")
	ErrInvalidFormat   = errors.New("invalid Authorization format")
	ErrMissingClaims   = errors.New("token is missing user claims")
	ErrUnexpectedToken = errors.New("unexpected token")
)

// TTL reads JWT_TTL_HOURS, defaulting to a day.
func TTL() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("JWT_TTL_HOURS"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func Sign(Data map[string]interface{}, ExpiredAt time.Duration) (string, int64, error) {
	expiredAt := time.Now().Add(ExpiredAt).Unix()

	JWTSecretKey := os.Getenv(SecretEnvKey)
	if JWTSecretKey == "" {
		return "", 0, fmt.Errorf("%s not set", SecretEnvKey)
	}

	claims := jwt.MapClaims{}
	claims["exp"] = expiredAt
	claims["iat"] = time.Now().Unix()

	for i, v := range Data {
		claims[i] = v
	}

	to := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := to.SignedString([]byte(JWTSecretKey))
	if err != nil {
		logrus.WithError(err).Error("Failed to sign token")
		return "", 0, err
	}

	return accessToken, expiredAt, nil
}

// SignUser issues an access token carrying the user's id and email.
func SignUser(user entity.UserLoginData) (string, int64, error) {
	return Sign(map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
	}, TTL())
}

func Parse(accessToken string, secretEnvKey string) (*jwt.Token, error) {
	JWTSecretKey := os.Getenv(secretEnvKey)
	if JWTSecretKey == "" {
		return nil, ErrMissingSecret
	}

	return jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(JWTSecretKey), nil
	})
}

func VerifyTokenHeader(c *fiber.Ctx, secretEnvKey string) (*jwt.Token, error) {
	header := c.Get("Authorization")
	if header == "" {
		return nil, ErrEmptyHeader
	}

	accessToken, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return nil, ErrInvalidFormat
	}

	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil, ErrInvalidFormat
	}

	return Parse(accessToken, secretEnvKey)
}

// UserFromToken extracts the login data from a verified token. Both the id and
// email claims must be present strings.
func UserFromToken(token *jwt.Token) (entity.UserLoginData, error) {
	if token == nil || !token.Valid {
		return entity.UserLoginData{}, ErrUnexpectedToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.UserLoginData{}, ErrUnexpectedToken
	}

	id, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	if id == "" || email == "" {
		return entity.UserLoginData{}, ErrMissingClaims
	}

	return entity.UserLoginData{ID: id, Email: email}, nil
}

func GetUserLoginData(c *fiber.Ctx) (entity.UserLoginData, error) {
	userData := c.Locals("user")

	user, ok := userData.(entity.UserLoginData)
	if !ok {
		return entity.UserLoginData{}, fiber.ErrUnauthorized
	}

	return user, nil
}
