package model

import "errors"

var (
	ErrDriverUnavailable  = errors.New("driver not compiled into this binary")
	ErrEnvironmentInvalid = errors.New("environment invalid")
	ErrConfigInvalid      = errors.New("config invalid")
)
