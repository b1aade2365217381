// Package codec turns a plan into a URL-safe share token and back.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"lifeplan/entities"
)

// ErrMalformedToken is wrapped by every Decode failure.
var ErrMalformedToken = errors.New("malformed share token")

// Encode serializes p to JSON and base64url-encodes it without padding.
func Encode(p *entities.PlanArtifact) (string, error) {
	if p == nil {
		return "", errors.New("encode: nil plan")
	}
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

var stdToURL = strings.NewReplacer("+", "-", "/", "_")

// Decode reverses Encode. Padding and the standard '+' '/' alphabet are tolerated.
func Decode(token string) (*entities.PlanArtifact, error) {
	token = stdToURL.Replace(strings.TrimRight(strings.TrimSpace(token), "="))
	if token == "" {
		return nil, fmt.Errorf("%w: empty", ErrMalformedToken)
	}
	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	var p entities.PlanArtifact
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if p.ID == "" || len(p.Versions) == 0 {
		return nil, fmt.Errorf("%w: not a plan", ErrMalformedToken)
	}
	return &p, nil
}
