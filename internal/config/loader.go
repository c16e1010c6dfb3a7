package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// LookupFunc returns the value of a named setting and whether it is set.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Load reads configuration from environment variables.
// It applies defaults for unset values and validates the result.
func Load() (*Config, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom reads configuration through lookup instead of the process
// environment. Values that are set but blank count as unset.
func LoadFrom(lookup LookupFunc) (*Config, error) {
	cfg := &Config{}

	if err := populate(reflect.ValueOf(cfg).Elem(), lookup); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// populate walks the struct and fills every field tagged `env`, recursing
// into nested settings structs.
func populate(v reflect.Value, lookup LookupFunc) error {
	for i := 0; i < v.NumField(); i++ {
		sf := v.Type().Field(i)
		fv := v.Field(i)
		if !fv.CanSet() {
			continue
		}

		if sf.Type.Kind() == reflect.Struct {
			if err := populate(fv, lookup); err != nil {
				return err
			}
			continue
		}

		key, raw, err := resolve(sf.Tag, lookup)
		if err != nil {
			return err
		}
		if raw == "" {
			continue
		}
		if err := assign(fv, raw); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", key, raw, err)
		}
	}
	return nil
}

// resolve picks the raw value for a field: the primary `env` key, then the
// `envAlt` key, then the `default` tag. key is "" for untagged fields.
func resolve(tag reflect.StructTag, lookup LookupFunc) (key, raw string, err error) {
	key = tag.Get("env")
	if key == "" {
		return "", "", nil
	}

	for _, k := range []string{key, tag.Get("envAlt")} {
		if k == "" {
			continue
		}
		if v, ok := lookup(k); ok && strings.TrimSpace(v) != "" {
			return key, strings.TrimSpace(v), nil
		}
	}

	if tag.Get("required") == "true" {
		return key, "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return key, tag.Get("default"), nil
}

// assign parses raw into the field according to its type.
func assign(fv reflect.Value, raw string) error {
	switch p := fv.Addr().Interface().(type) {
	case *string:
		*p = raw
	case *time.Duration:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}
		*p = d
	case *int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		*p = n
	case *[]string:
		*p = splitList(raw)
	default:
		return fmt.Errorf("unsupported field type: %s", fv.Type())
	}
	return nil
}

// splitList splits a comma-separated setting, dropping blank items.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
