package app

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// wordsPerMinute is the reading speed behind the dialog's reading time.
const wordsPerMinute = 200

type textMetrics struct {
	words int
	chars int
	lines int
}

func computeTextMetrics(content string) textMetrics {
	if content == "" {
		return textMetrics{}
	}
	lines := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		lines++
	}
	return textMetrics{
		words: len(strings.Fields(content)),
		chars: utf8.RuneCountInString(content),
		lines: lines,
	}
}

// readingMinutes rounds up and never reports less than a minute.
func readingMinutes(words int) int {
	if words <= 0 {
		return 0
	}
	return max(1, (words+wordsPerMinute-1)/wordsPerMinute)
}

// dialogMetricsSummary describes the body of the open dialog.
func (m *Model) dialogMetricsSummary(d *dialog) string {
	body := d.markdown(m.portfolio)
	if strings.TrimSpace(body) == "" {
		return ""
	}
	metrics := computeTextMetrics(body)
	return fmt.Sprintf("%d words · %d min read", metrics.words, readingMinutes(metrics.words))
}
