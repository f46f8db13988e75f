package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/verkkoraita/toggltempo/internal/domain"
)

var (
	// Compact form tracked by hand: "2h40m", "59m", "1h".
	compactPattern = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?$`)
	// Clock form as rendered by FormatDuration: "5:31:49".
	clockPattern = regexp.MustCompile(`^(\d+):([0-5]\d):([0-5]\d)$`)
)

// ParseDuration reads a human duration in either the compact hour/minute
// form ("2h40m", "59m", "1h") or the H:MM:SS clock form emitted by
// FormatDuration. It wraps domain.ErrFormat on anything else.
func ParseDuration(text string) (time.Duration, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%w: empty duration", domain.ErrFormat)
	}

	if m := clockPattern.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		seconds, _ := strconv.Atoi(m[3])
		return time.Duration(hours)*time.Hour +
			time.Duration(minutes)*time.Minute +
			time.Duration(seconds)*time.Second, nil
	}

	if m := compactPattern.FindStringSubmatch(s); m != nil && (m[1] != "" || m[2] != "") {
		var d time.Duration
		if m[1] != "" {
			hours, err := strconv.Atoi(m[1])
			if err != nil {
				return 0, fmt.Errorf("%w: duration %q", domain.ErrFormat, text)
			}
			d += time.Duration(hours) * time.Hour
		}
		if m[2] != "" {
			minutes, err := strconv.Atoi(m[2])
			if err != nil {
				return 0, fmt.Errorf("%w: duration %q", domain.ErrFormat, text)
			}
			d += time.Duration(minutes) * time.Minute
		}
		return d, nil
	}

	return 0, fmt.Errorf("%w: duration %q (expected forms: 2h40m, 59m, 5:31:49)", domain.ErrFormat, text)
}

// FormatDuration renders a non-negative whole-second duration as
// H:MM:SS with unbounded hours. This is the representation shown in
// previews and summaries.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}
