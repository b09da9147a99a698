package provider

import (
	"bytes"
	"fmt"
	"mime"
	"net/http"
	"strings"
)

var challengeMarkers = [][]byte{
	[]byte("Just a moment"),
	[]byte("Attention Required"),
	[]byte("captcha"),
	[]byte("cf-chl"),
}

// IsChallenge reports whether a response looks like a bot-interdiction page.
func IsChallenge(header http.Header, body []byte) bool {
	mediaType, _, err := mime.ParseMediaType(header.Get("Content-Type"))
	if err != nil || (mediaType != "application/json" && !strings.HasSuffix(mediaType, "+json")) {
		return true
	}
	lower := bytes.ToLower(body)
	for _, marker := range challengeMarkers {
		if bytes.Contains(lower, bytes.ToLower(marker)) {
			return true
		}
	}
	return false
}

// CheckResponse classifies a raw response before any JSON parsing.
// 404 is left to the caller.
func CheckResponse(providerName string, resp *http.Response, body []byte) error {
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%s status %d: %w", providerName, resp.StatusCode, ErrRateLimited)
	case resp.StatusCode == http.StatusNotFound:
		return nil
	case IsChallenge(resp.Header, body):
		return fmt.Errorf("%s status %d: %w", providerName, resp.StatusCode, ErrChallengeDetected)
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s server error: status %d", providerName, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		return &APIError{Provider: providerName, Status: resp.StatusCode, Message: string(truncate(body, 256))}
	}
	return nil
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
