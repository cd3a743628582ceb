package stats

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// byteSliceToStringHook converts driver-returned []byte columns (MySQL
// text and decimal values) into strings before the weak type conversion.
func byteSliceToStringHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() == reflect.Slice && f.Elem().Kind() == reflect.Uint8 {
			if b, ok := data.([]byte); ok {
				return string(b), nil
			}
		}
		return data, nil
	}
}

var rowDecodeHook = mapstructure.ComposeDecodeHookFunc(
	byteSliceToStringHook(),
)

// decodeRows maps raw SQL result rows into a typed slice. Column names
// are matched case-insensitively against mapstructure tags, so the same
// structs work against MySQL and sqlite result sets.
func decodeRows(rows []map[string]interface{}, out interface{}) error {
	normalized := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		m := make(map[string]interface{}, len(row))
		for k, v := range row {
			m[strings.ToLower(k)] = v
		}
		normalized[i] = m
	}
	cfg := &mapstructure.DecoderConfig{
		DecodeHook:       rowDecodeHook,
		WeaklyTypedInput: true,
		Result:           out,
		TagName:          "mapstructure",
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return dec.Decode(normalized)
}

func compositeKey(parts ...interface{}) string {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = fmt.Sprintf("%v", p)
	}
	return strings.Join(strs, ":")
}
