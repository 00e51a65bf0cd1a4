package entity

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("sales agent email already exists")
	ErrAgentNotFound      = errors.New("sales agent not found")
	ErrLeadNotFound       = errors.New("lead not found")
)
