package auth

import (
	"FinanceTracker/pkg/response"
	"net/http"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "email already exists")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusUnauthorized, "email or password is wrong")
	ErrUserNotFound           = response.NewError(http.StatusUnauthorized, "user not found")
	ErrRegisterUser           = response.NewError(http.StatusInternalServerError, "failed to register user")
)
