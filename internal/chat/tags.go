// Package chat handles the conversation with the pet: the backend call,
// the machine-readable tags embedded in replies, slash commands and the
// canned feeding lines.
package chat

import (
	"regexp"
	"strconv"
	"strings"
)

// The backend appends at most one tag to a reply. Parsing is forgiving:
// case-insensitive, square or round brackets, and the Spanish MEMORIA
// spelling all match.
var (
	recallRe = regexp.MustCompile(`(?i)[\[\(]RECALL:\s*(\d+)[\]\)]`)
	memoryRe = regexp.MustCompile(`(?i)[\[\(]MEMOR(?:Y|IA):\s*(.*?)[\]\)]`)
)

// Tags is the structured result of scanning one backend reply.
type Tags struct {
	Memory    string // new fact to remember
	HasMemory bool
	Recall    int // 1-based memory reference, zero when absent
}

// ParseTags extracts the MEMORY/RECALL tags from a reply and returns
// them with the tag-stripped display text.
func ParseTags(reply string) (Tags, string) {
	var tags Tags

	if m := memoryRe.FindStringSubmatch(reply); m != nil {
		tags.Memory = strings.TrimSpace(m[1])
		tags.HasMemory = true
	}
	if m := recallRe.FindStringSubmatch(reply); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			tags.Recall = n
		}
	}

	display := memoryRe.ReplaceAllString(reply, "")
	display = recallRe.ReplaceAllString(display, "")
	return tags, strings.TrimSpace(display)
}
