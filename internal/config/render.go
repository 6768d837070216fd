package config

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderDefaultTOML renders a TOML config with defaults from GetConfigOptions.
func RenderDefaultTOML() string {
	top, sections, order := splitSections(GetConfigOptions())

	out := []string{"# gemchat configuration (TOML)", ""}
	for _, o := range top {
		out = appendOption(out, o)
	}
	for _, section := range order {
		out = append(out, "["+section+"]")
		for _, o := range sections[section] {
			out = appendOption(out, o)
		}
	}
	return strings.Join(out, "\n")
}

// UpdateTOML adds missing defaults to an existing TOML string and comments
// out keys that are no longer part of the schema. It reports whether the
// content changed.
func UpdateTOML(existing string) (string, bool) {
	opts := GetConfigOptions()
	known := make(map[string]bool, len(opts))
	for _, o := range opts {
		known[o.Key] = true
	}

	seen := make(map[string]bool)
	section := ""
	lines := strings.Split(existing, "\n")
	out := make([]string, 0, len(lines))
	changed := false

	for _, line := range lines {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") {
			out = append(out, line)
			continue
		}
		if isSectionHeader(trim) {
			section = strings.TrimSpace(trim[1 : len(trim)-1])
			out = append(out, line)
			continue
		}
		key, ok := parseTOMLKey(line)
		if !ok {
			out = append(out, line)
			continue
		}
		full := qualify(section, key)
		seen[full] = true
		if !known[full] {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			out = append(out, indent+"# OUTDATED: option removed from config schema")
			out = append(out, indent+"# "+strings.TrimLeft(line, " \t"))
			changed = true
			continue
		}
		out = append(out, line)
	}

	missing := make([]ConfigOption, 0)
	for _, o := range opts {
		if !seen[o.Key] {
			missing = append(missing, o)
		}
	}
	if len(missing) == 0 {
		return strings.Join(out, "\n"), changed
	}

	top, sections, order := splitSections(missing)
	if len(top) > 0 {
		// Top-level keys must precede the first table header.
		block := []string{"# Added by config update"}
		for _, o := range top {
			block = appendOption(block, o)
		}
		at := firstSectionIndex(out)
		out = append(out[:at], append(block, out[at:]...)...)
	}
	appended := false
	for _, name := range order {
		block := make([]string, 0)
		for _, o := range sections[name] {
			block = appendOption(block, o)
		}
		if at := sectionIndex(out, name); at >= 0 {
			out = append(out[:at+1], append(block, out[at+1:]...)...)
			continue
		}
		if !appended {
			out = append(out, "", "# Added by config update")
			appended = true
		}
		out = append(out, "["+name+"]")
		out = append(out, block...)
	}
	return strings.Join(out, "\n"), true
}

// splitSections groups dotted keys by their first segment, keeping the
// order in which sections first appear. Returned section options carry the
// key without the section prefix.
func splitSections(opts []ConfigOption) ([]ConfigOption, map[string][]ConfigOption, []string) {
	top := make([]ConfigOption, 0, len(opts))
	sections := make(map[string][]ConfigOption)
	order := make([]string, 0)
	for _, o := range opts {
		section, key, dotted := strings.Cut(o.Key, ".")
		if !dotted {
			top = append(top, o)
			continue
		}
		if _, ok := sections[section]; !ok {
			order = append(order, section)
		}
		sections[section] = append(sections[section], ConfigOption{Key: key, Default: o.Default, Comment: o.Comment})
	}
	return top, sections, order
}

func appendOption(out []string, o ConfigOption) []string {
	if o.Comment != "" {
		out = append(out, "# "+o.Comment)
	}
	return append(out, o.Key+" = "+formatTOMLValue(o.Default), "")
}

func formatTOMLValue(value any) string {
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case bool, int, int64, float64:
		return fmt.Sprintf("%v", v)
	case []string:
		quoted := make([]string, len(v))
		for i, s := range v {
			quoted[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return strconv.Quote(fmt.Sprintf("%v", v))
	}
}

func qualify(section, key string) string {
	if section == "" {
		return key
	}
	return section + "." + key
}

func parseTOMLKey(line string) (string, bool) {
	idx := strings.Index(line, "=")
	if idx == -1 {
		return "", false
	}
	key := strings.TrimSpace(line[:idx])
	if key == "" || strings.HasPrefix(key, "[") {
		return "", false
	}
	if strings.HasPrefix(key, "\"") || strings.HasPrefix(key, "'") {
		return "", false
	}
	return key, true
}

func sectionIndex(lines []string, name string) int {
	for i, line := range lines {
		trim := strings.TrimSpace(line)
		if isSectionHeader(trim) && strings.TrimSpace(trim[1:len(trim)-1]) == name {
			return i
		}
	}
	return -1
}

func firstSectionIndex(lines []string) int {
	for i, line := range lines {
		if isSectionHeader(strings.TrimSpace(line)) {
			return i
		}
	}
	return len(lines)
}

func isSectionHeader(trim string) bool {
	return strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]")
}
