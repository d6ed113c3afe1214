// Package timefmt renders provider timestamps for display.
package timefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// layout renders like "Tue, 14 Nov 2023 22:13:20 (SGT)".
const layout = "Mon, 02 Jan 2006 15:04:05 (MST)"

// Format converts a provider timestamp, epoch milliseconds as a numeric
// string, into a human-readable string localized to loc.
func Format(epochMillis string, loc *time.Location) (string, error) {
	ms, err := strconv.ParseInt(strings.TrimSpace(epochMillis), 10, 64)
	if err != nil {
		return "", fmt.Errorf("timefmt: invalid timestamp %q: %w", epochMillis, err)
	}
	return time.UnixMilli(ms).In(loc).Format(layout), nil
}
