package arg

import "strings"

// HandleContent joins every argument after the title and tags into the note
// body.
func HandleContent(args []string) string {
	if len(args) < 3 {
		return ""
	}
	return strings.Join(args[2:], " ")
}
