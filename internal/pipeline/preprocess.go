package pipeline

import (
	"regexp"
	"strings"
)

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// byteOrderMark is stripped from the start of sources saved by some editors.
const byteOrderMark = "\uFEFF"

// normalizeSource converts line endings to \n and drops a leading BOM.
func normalizeSource(content string) string {
	content = strings.TrimPrefix(content, byteOrderMark)
	if !strings.Contains(content, "\r") {
		return content
	}
	return crlfOrCR.ReplaceAllString(content, "\n")
}
