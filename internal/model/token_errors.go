package model

import "errors"

var (
	ErrMissingToken = errors.New("missing authorization token")
	ErrInvalidToken = errors.New("invalid authorization token")
	ErrExpiredToken = errors.New("authorization token expired")
)
