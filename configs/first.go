package configs

import (
	"errors"
)

// First returns the value at path of the first source defining it, or the zero value.
// Invalid sources panic.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
