package arg

import (
	"fmt"
	"regexp"
	"strings"
)

var validTag = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)

// HandleTags returns the tags given as the second argument, separated by
// spaces or commas.
func HandleTags(args []string) ([]string, error) {
	if len(args) < 2 {
		return nil, nil
	}
	return ParseTags(args[1])
}

// ParseTags splits input into tags. Tags may contain letters, digits,
// hyphens and underscores.
func ParseTags(input string) ([]string, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == ','
	})

	tags := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if !validTag.MatchString(f) {
			return nil, fmt.Errorf(
				"invalid tag '%s': tags must only contain alphanumeric characters, hyphens, and underscores",
				f,
			)
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		tags = append(tags, f)
	}
	return tags, nil
}
