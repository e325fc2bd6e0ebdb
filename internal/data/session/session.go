// Package session handles credential exchange and token storage. The
// core only ever asks it two things: whether a session exists, and
// what authorization header to send.
package session

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/seriv/go-xp-dashboard/internal/util"
)

// ErrNotAuthenticated is returned when no valid session is stored.
var ErrNotAuthenticated = fmt.Errorf("not authenticated, run login first")

// Session is a stored bearer token plus its expiry, read from the JWT
// payload at signin time so expiry checks never need the network.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Authenticated reports whether the token exists and has not expired.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != "" && time.Now().Before(s.ExpiresAt)
}

// AuthHeader returns the Authorization header value for API requests.
func (s *Session) AuthHeader() string {
	return "Bearer " + s.Token
}

// Store persists sessions as a single JSON file under the app dir.
type Store struct {
	path string
}

// NewStore creates a store rooted at the given directory.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, "session.json")}
}

// Load reads the stored session. A missing file returns
// ErrNotAuthenticated rather than an I/O error.
func (st *Store) Load() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("reading session: %w", err)
	}
	var s Session
	if err := sonic.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return &s, nil
}

// Save writes the session file with owner-only permissions.
func (st *Store) Save(s *Session) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0755); err != nil {
		return err
	}
	data, err := sonic.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(st.path, data, 0600)
}

// Delete removes the stored session. Deleting a session that does not
// exist is not an error.
func (st *Store) Delete() error {
	err := os.Remove(st.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Signin exchanges credentials for a JWT via HTTP basic auth against
// the platform's signin endpoint.
func Signin(ctx context.Context, signinURL, username, password string) (*Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, signinURL, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(username, password)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("signin request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading signin response: %w", err)
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("invalid credentials")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("signin failed with status %d", resp.StatusCode)
	}

	// The endpoint returns the JWT as a JSON-quoted string.
	var token string
	if err := sonic.Unmarshal(body, &token); err != nil {
		token = strings.Trim(strings.TrimSpace(string(body)), `"`)
	}
	if token == "" {
		return nil, fmt.Errorf("signin returned an empty token")
	}

	expires, err := tokenExpiry(token)
	if err != nil {
		util.LogWarnf("Could not read token expiry, assuming 24h: %v", err)
		expires = time.Now().Add(24 * time.Hour)
	}

	return &Session{Token: token, ExpiresAt: expires}, nil
}

// tokenExpiry decodes the exp claim from the JWT payload without
// verifying the signature; verification belongs to the server.
func tokenExpiry(token string) (time.Time, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("token is not a JWT")
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("decoding JWT payload: %w", err)
	}
	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := sonic.Unmarshal(payload, &claims); err != nil {
		return time.Time{}, fmt.Errorf("parsing JWT claims: %w", err)
	}
	if claims.Exp == 0 {
		return time.Time{}, fmt.Errorf("JWT carries no exp claim")
	}
	return time.Unix(claims.Exp, 0), nil
}
