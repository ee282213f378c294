//go:build !linux

package render

// ApplyWindowHints is a no-op outside Linux; the skip_taskbar and
// skip_pager EWMH hints are X11-specific.
func ApplyWindowHints(skipTaskbar, skipPager bool) error {
	return nil
}

// CloseWindowHints is a no-op outside Linux.
func CloseWindowHints() {
}
