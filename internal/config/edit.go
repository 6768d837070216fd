package config

import (
	"fmt"
	"strconv"
	"strings"
)

// LookupOption returns the option registered under key.
func LookupOption(key string) (ConfigOption, bool) {
	for _, o := range GetConfigOptions() {
		if o.Key == key {
			return o, true
		}
	}
	return ConfigOption{}, false
}

// SetTOMLValue sets key to raw in existing TOML content, replacing the
// current assignment or adding one to the key's section. raw is converted
// to the type of the option's default.
func SetTOMLValue(existing, key, raw string) (string, error) {
	opt, ok := LookupOption(key)
	if !ok {
		return "", fmt.Errorf("unknown config key %q", key)
	}
	value, err := coerce(opt.Default, raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}

	section, name, dotted := strings.Cut(key, ".")
	if !dotted {
		name, section = key, ""
	}
	assignment := name + " = " + formatTOMLValue(value)

	lines := strings.Split(existing, "\n")
	out := make([]string, 0, len(lines)+3)
	current := ""
	insertAt := -1
	if section == "" {
		insertAt = firstSectionIndex(lines)
	}
	replaced := false

	for i, line := range lines {
		trim := strings.TrimSpace(line)
		if isSectionHeader(trim) {
			current = strings.TrimSpace(trim[1 : len(trim)-1])
			if current == section {
				insertAt = i + 1
			}
		}
		if k, ok := parseTOMLKey(line); ok && !replaced && current == section && k == name {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			out = append(out, indent+assignment)
			replaced = true
			continue
		}
		out = append(out, line)
	}
	if replaced {
		return strings.Join(out, "\n"), nil
	}

	if insertAt == -1 {
		if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
			out = append(out, "")
		}
		out = append(out, "["+section+"]", assignment)
		return strings.Join(out, "\n"), nil
	}
	out = append(out[:insertAt], append([]string{assignment}, out[insertAt:]...)...)
	return strings.Join(out, "\n"), nil
}

func coerce(def any, raw string) (any, error) {
	switch def.(type) {
	case int:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("expected an integer, got %q", raw)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("expected true or false, got %q", raw)
		}
		return b, nil
	default:
		return raw, nil
	}
}
