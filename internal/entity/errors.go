package entity

import "errors"

var (
	ErrLeadNotFound  = errors.New("lead not found")
	ErrDuplicateLead = errors.New("a lead with this phone already exists")
)
