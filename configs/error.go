package configs

import "errors"

var (
	ErrValueNotFound          = errors.New("value not found")
	ErrUnsupportedConfigValue = errors.New("unsupported config value")
)
