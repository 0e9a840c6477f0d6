package domain

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrLoginRequired    = errors.New("login required")
	ErrUnknownCommand   = errors.New("unknown command")
)
