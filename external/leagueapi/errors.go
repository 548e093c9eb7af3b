package leagueapi

import (
	"strconv"
	"strings"
	"unicode/utf8"

	crerr "github.com/cockroachdb/errors"
)

// Failures wrap one of these so callers can classify them with errors.Is.
var (
	ErrUnsupportedMethod = crerr.New("league api: unsupported write method")
	ErrTransport         = crerr.New("league api: transport failure")
	ErrStatus            = crerr.New("league api: unexpected status")
	ErrDecode            = crerr.New("league api: malformed response body")
)

// StatusError carries the upstream status code of a non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return "league api status=" + strconv.Itoa(e.Code) + " body=" + e.Body
}

func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}

// StatusCode returns the upstream status for ErrStatus failures, or 0.
func StatusCode(err error) int {
	var statusErr *StatusError
	if crerr.As(err, &statusErr) {
		return statusErr.Code
	}
	return 0
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) <= limit {
		return body
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut] + "..."
}
