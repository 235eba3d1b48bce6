package domain

import "errors"

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrUpstream       = errors.New("upstream unavailable")
	ErrStore          = errors.New("store error")
	ErrUnknownRegion  = errors.New("unknown region")
	ErrInvalidInput   = errors.New("invalid input")
	ErrMissingAPIKey  = errors.New("riot api key is not set")
)
