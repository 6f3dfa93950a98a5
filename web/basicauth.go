package web

import (
	"encoding/base64"
	"net/http"
	"regexp"
)

// BasicAuthCode identifies the outcome of parsing basic-auth
// credentials. Values are stable and suitable for use as debug-detail
// codes.
type BasicAuthCode int

const (
	// BasicAuthOK means credentials were extracted successfully.
	BasicAuthOK BasicAuthCode = 0x0000
	// BasicAuthNoHeader means the request has no Authorization header.
	BasicAuthNoHeader BasicAuthCode = 0x0001
	// BasicAuthMalformedHeader means the Authorization header is not a
	// well-formed basic-auth value.
	BasicAuthMalformedHeader BasicAuthCode = 0x0002
	// BasicAuthBadBase64 means the credentials are not valid base64.
	BasicAuthBadBase64 BasicAuthCode = 0x0003
	// BasicAuthMalformedCreds means the decoded credentials are not a
	// username:password pair.
	BasicAuthMalformedCreds BasicAuthCode = 0x0004
)

var (
	basicAuthHeaderPattern = regexp.MustCompile(`(?i)^\s*basic\s+(\S+)\s*$`)
	basicAuthCredsPattern  = regexp.MustCompile(`^\s*([^:]+):(\S+)\s*$`)
)

// BasicAuthCreds extracts and decodes the username and password from
// the request's Authorization header, assuming BASIC auth. On any kind
// of error the username and password are empty and the code identifies
// what went wrong.
func BasicAuthCreds(r *http.Request) (username, password string, code BasicAuthCode) {
	headerValue := r.Header.Get("Authorization")
	if headerValue == "" {
		return "", "", BasicAuthNoHeader
	}

	match := basicAuthHeaderPattern.FindStringSubmatch(headerValue)
	if match == nil {
		return "", "", BasicAuthMalformedHeader
	}

	decoded, err := base64.StdEncoding.DecodeString(match[1])
	if err != nil {
		return "", "", BasicAuthBadBase64
	}

	match = basicAuthCredsPattern.FindStringSubmatch(string(decoded))
	if match == nil {
		return "", "", BasicAuthMalformedCreds
	}

	return match[1], match[2], BasicAuthOK
}
