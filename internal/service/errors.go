package service

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserExists          = errors.New("user already exists")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidAccountName  = errors.New("account name is empty")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrForbidden           = errors.New("not authorized to perform action")
)
