package workspace

import (
	"strconv"
	"strings"
)

// Target is a file to open, optionally at a line.
type Target struct {
	Path string
	Line int // 0-based, -1 when not given
}

// ParseTarget splits "path" or "path:line" with a 1-based line. A suffix
// that is not a positive number stays part of the path.
func ParseTarget(s string) Target {
	s = strings.TrimSpace(s)
	i := strings.LastIndexByte(s, ':')
	if i <= 0 || i == len(s)-1 {
		return Target{Path: s, Line: -1}
	}
	n, err := strconv.Atoi(s[i+1:])
	if err != nil || n < 1 {
		return Target{Path: s, Line: -1}
	}
	return Target{Path: s[:i], Line: n - 1}
}
