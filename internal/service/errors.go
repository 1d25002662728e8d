package service

import "errors"

var (
	ErrUnknownKind     = errors.New("unknown detection kind")
	ErrSessionNotFound = errors.New("session not found")
)
