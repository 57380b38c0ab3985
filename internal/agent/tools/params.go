// Package tools implements the support operations exposed through the agent registry.
package tools

import (
	"fmt"
	"strings"
)

func requiredString(params map[string]interface{}, key string) (string, error) {
	v, _ := params[key].(string)
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("'%s' is required", key)
	}
	return v, nil
}

func optionalString(params map[string]interface{}, key string) string {
	v, _ := params[key].(string)
	return strings.TrimSpace(v)
}

// optionalInt accepts the float64 that JSON numbers decode into as well as plain ints.
func optionalInt(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}
