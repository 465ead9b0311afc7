package statusline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
)

// maxDirDisplayWidth bounds the directory segment so one deep path cannot
// crowd everything else off the line.
const maxDirDisplayWidth = 40

// DisplayPath formats a directory for the status line: the home prefix
// collapses to "~" and over-long paths keep their first and last components
// around an ellipsis.
func DisplayPath(path string) string {
	display := path
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		if display == home {
			display = "~"
		} else if strings.HasPrefix(display, home+string(filepath.Separator)) {
			display = "~" + display[len(home):]
		}
	}
	if runewidth.StringWidth(display) <= maxDirDisplayWidth {
		return display
	}
	return shortenPath(display)
}

func shortenPath(display string) string {
	sep := string(filepath.Separator)
	parts := strings.Split(display, sep)
	if len(parts) <= 2 {
		return runewidth.Truncate(display, maxDirDisplayWidth, "…")
	}
	head := parts[0]
	if head == "" {
		head = sep
	}
	for drop := 1; drop < len(parts)-1; drop++ {
		tail := strings.Join(parts[drop:], sep)
		candidate := head
		if head != sep {
			candidate += sep
		}
		candidate += "…" + sep + tail
		if runewidth.StringWidth(candidate) <= maxDirDisplayWidth {
			return candidate
		}
	}
	// Even the basename alone is too wide; hard-truncate it.
	return runewidth.Truncate("…"+sep+parts[len(parts)-1], maxDirDisplayWidth, "…")
}
