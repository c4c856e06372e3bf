package domain

import "errors"

// Account errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrWrongPassword = errors.New("wrong password")
)
