package configs

import "reflect"

// Configurable types can be overridden by config scripts.
// ConfigName is the variable name a script binds, and also the cue path.
type Configurable interface {
	ConfigName() string
}

var configurableType = reflect.TypeFor[Configurable]()
