package domain

import "errors"

var (
	ErrShellNotFound     = errors.New("shell not found")
	ErrUnsupportedSystem = errors.New("unsupported host system identifier")
)
