package model

import "strings"

// ParseClassList splits a comma and/or whitespace separated class list,
// keeping the first occurrence of every token.
func ParseClassList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil
	}
	out := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, token := range fields {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}

// MergeClasses joins class lists, dropping duplicates while preserving the
// order of first appearance.
func MergeClasses(lists ...[]string) string {
	seen := make(map[string]struct{})
	out := make([]string, 0, 8)
	for _, list := range lists {
		for _, token := range list {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			out = append(out, token)
		}
	}
	return strings.Join(out, " ")
}
