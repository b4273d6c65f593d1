// Package roster parses the markdown document listing student-led project
// proposals. Each project is a level-2 heading followed by a bullet naming
// the student leading it.
package roster

import (
	"os"
	"strings"

	"groupctl/internal/logging"
)

// DefaultSkipHeading marks section headings (table of contents, index) that
// must not be treated as project headers.
const DefaultSkipHeading = "Project Ideas"

// Entry pairs a project name with the free-text name of its leader, in
// document order.
type Entry struct {
	Project string
	Leader  string
}

// Parse scans the roster text line by line. A trimmed line starting with
// "## " opens a project unless its heading text contains skipHeading; the
// first "- " bullet after an open header emits an Entry. Subsequent bullets
// before the next header are ignored, as are headers never followed by a
// bullet and bullets appearing before any header.
func Parse(text, skipHeading string) []Entry {
	var entries []Entry
	var pending string
	havePending := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if name, ok := strings.CutPrefix(line, "## "); ok {
			name = strings.TrimSpace(name)
			if skipHeading != "" && strings.Contains(name, skipHeading) {
				// Section heading (index, table of contents), not a project.
				continue
			}
			if havePending {
				logging.RosterDebug("header %q had no leader bullet, dropped", pending)
			}
			pending = name
			havePending = true
			continue
		}

		if leader, ok := strings.CutPrefix(line, "- "); ok {
			if !havePending {
				continue
			}
			entries = append(entries, Entry{
				Project: pending,
				Leader:  strings.TrimSpace(leader),
			})
			pending = ""
			havePending = false
		}
	}

	if havePending {
		logging.RosterDebug("trailing header %q had no leader bullet, dropped", pending)
	}

	logging.Roster("parsed %d project entries", len(entries))
	return entries
}

// ParseFile reads the roster from disk and parses it. An unreadable file is
// a fatal precondition for the caller; no partial entries are returned.
func ParseFile(path, skipHeading string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logging.RosterError("read %s: %v", path, err)
		return nil, err
	}
	return Parse(string(data), skipHeading), nil
}
