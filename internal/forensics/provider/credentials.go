package provider

import "strings"

// TokenPool is an immutable set of provider credentials.
type TokenPool struct {
	tokens []string
}

// NewTokenPool drops blank entries.
func NewTokenPool(tokens []string) TokenPool {
	clean := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	return TokenPool{tokens: clean}
}

// Len is the number of usable tokens.
func (p TokenPool) Len() int {
	return len(p.tokens)
}

// Pick selects the token for a random draw n; an empty pool yields "".
func (p TokenPool) Pick(n int) string {
	if len(p.tokens) == 0 {
		return ""
	}
	if n < 0 {
		n = -n
	}
	return p.tokens[n%len(p.tokens)]
}
