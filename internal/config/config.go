package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/zhubert/codeview/internal/errors"
)

// DefaultServerURL is the API root used when nothing is configured.
const DefaultServerURL = "http://localhost:3000/api"

// DefaultRequestTimeout is used when request_timeout is empty.
const DefaultRequestTimeout = 15 * time.Second

// MaxRecentSessions caps the recent_sessions history.
const MaxRecentSessions = 10

// Config holds the application configuration
type Config struct {
	ServerURL      string   `json:"server_url,omitempty"`      // Code API root, e.g. http://localhost:3000/api
	Theme          string   `json:"theme,omitempty"`           // UI theme name (e.g., "dark-purple", "nord")
	RequestTimeout string   `json:"request_timeout,omitempty"` // Go duration string, e.g. "15s"
	RecentSessions []string `json:"recent_sessions,omitempty"` // Most recent first

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".codeview"), nil
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from the default location, or returns defaults if it doesn't exist
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.codeview", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from path, or returns defaults if the file doesn't exist
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		RecentSessions: []string{},
		filePath:       path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if cfg.RecentSessions == nil {
		cfg.RecentSessions = []string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.ServerURL != "" {
		if err := ValidateServerURL(c.ServerURL); err != nil {
			return err
		}
	}

	if c.RequestTimeout != "" {
		d, err := time.ParseDuration(c.RequestTimeout)
		if err != nil {
			return errors.ConfigInvalid(fmt.Sprintf("invalid request_timeout %q: %v", c.RequestTimeout, err))
		}
		if d <= 0 {
			return errors.ConfigInvalid(fmt.Sprintf("request_timeout must be positive, got %s", c.RequestTimeout))
		}
	}

	for _, id := range c.RecentSessions {
		if id == "" {
			return errors.ConfigInvalid("empty session id in recent_sessions")
		}
	}

	return nil
}

// ValidateServerURL checks that raw is an absolute http(s) URL.
func ValidateServerURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.ConfigInvalid(fmt.Sprintf("invalid server_url %q: %v", raw, err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.ConfigInvalid(fmt.Sprintf("server_url must use http or https, got %q", raw))
	}
	if u.Host == "" {
		return errors.ConfigInvalid(fmt.Sprintf("server_url has no host: %q", raw))
	}
	return nil
}

// Save writes the config to disk. The file is written to a temp file in the
// same directory and renamed into place.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return errors.ConfigSaveFailed("", fmt.Errorf("no file path set"))
	}

	dir := filepath.Dir(c.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.Rename(tmpName, c.filePath); err != nil {
		os.Remove(tmpName)
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// SetFilePath sets where Save writes. Mainly for tests.
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// FilePath returns where Save writes.
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetServerURL returns the configured API root, or DefaultServerURL.
func (c *Config) GetServerURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.ServerURL == "" {
		return DefaultServerURL
	}
	return c.ServerURL
}

// SetServerURL sets the API root
func (c *Config) SetServerURL(u string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ServerURL = u
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetRequestTimeout returns the parsed request timeout, or DefaultRequestTimeout.
func (c *Config) GetRequestTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.RequestTimeout == "" {
		return DefaultRequestTimeout
	}
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return DefaultRequestTimeout
	}
	return d
}

// SetRequestTimeout sets the request timeout
func (c *Config) SetRequestTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.RequestTimeout = d.String()
}

// GetRecentSessions returns a copy of the recent session ids, most recent first
func (c *Config) GetRecentSessions() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, len(c.RecentSessions))
	copy(ids, c.RecentSessions)
	return ids
}

// LastSession returns the most recently opened session id, or "".
func (c *Config) LastSession() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.RecentSessions) == 0 {
		return ""
	}
	return c.RecentSessions[0]
}

// AddRecentSession moves id to the front of the history, trimming to MaxRecentSessions.
// Returns false if id is empty or already the most recent entry.
func (c *Config) AddRecentSession(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id == "" {
		return false
	}
	if len(c.RecentSessions) > 0 && c.RecentSessions[0] == id {
		return false
	}

	ids := make([]string, 0, len(c.RecentSessions)+1)
	ids = append(ids, id)
	for _, existing := range c.RecentSessions {
		if existing != id {
			ids = append(ids, existing)
		}
	}
	if len(ids) > MaxRecentSessions {
		ids = ids[:MaxRecentSessions]
	}
	c.RecentSessions = ids
	return true
}

// ClearRecentSessions empties the session history. Returns how many entries were removed.
func (c *Config) ClearRecentSessions() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.RecentSessions)
	c.RecentSessions = []string{}
	return n
}
