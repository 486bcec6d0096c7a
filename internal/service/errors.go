package service

import "errors"

var (
	// ErrInvalidInput входные данные не прошли проверку
	ErrInvalidInput = errors.New("invalid input")
	// ErrUserNotFound пользователь не зарегистрирован
	ErrUserNotFound = errors.New("user not found")
)
