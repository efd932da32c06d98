package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts various types to int using explicit type switching.
// It handles standard integer types, floats, json.Number, strings and byte slices.
// Values that cannot be converted yield 0.
func ToInt(val any) int {
	return int(ToInt64(val))
}

// ToInt64 is the 64-bit variant of ToInt.
func ToInt64(val any) int64 {
	switch v := val.(type) {
	case nil:
		return 0
	case int:
		return int64(v)
	case int64:
		return v
	case int32:
		return int64(v)
	case int16:
		return int64(v)
	case int8:
		return int64(v)
	case uint:
		return int64(v)
	case uint64:
		return int64(v)
	case uint32:
		return int64(v)
	case uint16:
		return int64(v)
	case uint8:
		return int64(v)
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		f, _ := v.Float64()
		return int64(f)
	case string:
		i, _ := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return i
	case []byte:
		i, _ := strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
		return i
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		i, _ := strconv.ParseInt(fmt.Sprintf("%v", v), 10, 64)
		return i
	}
}

// IsInteger reports whether val holds a whole number, either natively or as
// a numeric string.
func IsInteger(val any) bool {
	switch v := val.(type) {
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return true
	case float64:
		return v == math.Trunc(v)
	case float32:
		return float64(v) == math.Trunc(float64(v))
	case json.Number:
		_, err := v.Int64()
		return err == nil
	case string:
		_, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return err == nil
	default:
		return false
	}
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ParseUnusualBool converts the boolean encodings clients upload into a bool.
//
//	bool                         -> itself
//	number                       -> true when non-zero
//	"true"/"1" (any case)        -> true
//	"false"/"0" and anything else -> false
//
// It never fails.
func ParseUnusualBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return ToInt64(v) != 0
	case float64:
		return v != 0
	case float32:
		return v != 0
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0
	case string:
		return parseBoolString(v)
	case []byte:
		return parseBoolString(string(v))
	default:
		return false
	}
}

func parseBoolString(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1":
		return true
	default:
		return false
	}
}

// ParseUnusualID converts an uploaded identifier into a string. IDs may be
// sent as strings or numbers; "0" (or numeric 0) is the clients' sentinel for
// "no ID" and yields nil, as do empty and unsupported values.
func ParseUnusualID(val any) *string {
	var s string
	switch v := val.(type) {
	case string:
		s = strings.TrimSpace(v)
	case json.Number:
		s = v.String()
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case int, int64, int32, uint, uint64, uint32:
		s = strconv.FormatInt(ToInt64(v), 10)
	default:
		return nil
	}
	if s == "" || s == "0" {
		return nil
	}
	return &s
}
