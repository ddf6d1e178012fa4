package domain

import "errors"

var (
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")
	// ErrInvalidAddress will throw if a contract address is not hex encoded
	ErrInvalidAddress = errors.New("Invalid address")
)
