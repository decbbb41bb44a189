package hook

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
	"pkg.aki.moe/rolebind/internal/rolespec"
)

var (
	colorType = reflect.TypeOf(rolespec.Color(0))
)

func Color() mapstructure.DecodeHookFuncType {
	return func(in reflect.Type, out reflect.Type, val interface{}) (interface{}, error) {
		if in.Kind() == reflect.String && out == colorType {
			return rolespec.ParseColor(val.(string))
		}
		return val, nil
	}
}
