package config

import "errors"

// ErrParse is returned when environment variables cannot be parsed into the
// configuration struct. The underlying parser error is joined onto it.
var ErrParse = errors.New("config: failed to parse environment variables")
