package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

/* These run over whatever one recv yielded, which can be a truncated HTTP
 * exchange, or not HTTP at all. Nothing here is allowed to error hard; a
 * false return just means the caller has no answer.
 */

// LastLine extracts the last non-empty line of the payload. The echo
// services of interest put the address on the final body line, so this works
// on a raw status-line+headers+body blob without needing a header parse.
func LastLine(payload []byte) (string, bool) {
	if !utf8.Valid(payload) {
		return "", false
	}

	lines := strings.Split(string(payload), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimRight(lines[i], "\r")
		if line != "" {
			return line, true
		}
	}

	return "", false
}

// StatusLine parses the leading HTTP status line, eg "HTTP/1.1 200 OK".
// Informational only.
func StatusLine(payload []byte) (proto string, code int, message string, ok bool) {
	if !utf8.Valid(payload) {
		return
	}

	head, _, _ := strings.Cut(string(payload), "\n")
	head = strings.TrimRight(head, "\r")

	parts := strings.SplitN(head, " ", 3)
	if len(parts) < 2 || !strings.HasPrefix(parts[0], "HTTP/") {
		return
	}

	code, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, "", false
	}

	proto = parts[0]
	message = strings.TrimPrefix(head, proto+" ")
	ok = true
	return
}
