package app

import (
	"strconv"
	"strings"

	"oledcaster/internal/raycast"
	"oledcaster/pkg/logger"
)

// ApplyOverride applies a key=value renderer parameter override. Malformed
// or unknown overrides are logged and reported as not applied.
func ApplyOverride(r *raycast.Renderer, kv string) bool {
	key, value, ok := strings.Cut(kv, "=")
	if !ok {
		logger.Log.Warnf("ignored override %q: want key=value", kv)
		return false
	}
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)
	applied := false
	if key == raycast.ParamDither {
		if v, err := strconv.ParseBool(value); err == nil {
			applied = r.SetBoolParameter(key, v)
		}
	} else if v, err := strconv.ParseFloat(value, 64); err == nil {
		applied = r.SetFloatParameter(key, v)
	}
	if !applied {
		logger.Log.Warnf("ignored override %s=%s", key, value)
	}
	return applied
}
