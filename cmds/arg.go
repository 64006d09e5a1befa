package cmds

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/reusee/monkeyfront/vars"
)

func getArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if len(args) == 0 {
		if t.Kind() == reflect.Pointer {
			// optional
			return reflect.New(t.Elem()), nil
		}
		return ret, fmt.Errorf("expecting argument, got nothing")
	}

	if t.Kind() == reflect.Pointer {
		elem, err := getArg(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	}

	str := args[0]
	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		v, ok := vars.ParseBool(str)
		if !ok {
			return ret, fmt.Errorf("convert %s to bool", str)
		}
		ret.SetBool(v)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)

	case reflect.String:
		ret.SetString(str)

	default:
		return ret, fmt.Errorf("unsupported type: %v", t)
	}

	return ret, nil
}
