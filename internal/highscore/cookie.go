package highscore

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CookieName is the name of the cookie holding the best score.
const CookieName = "flappy_best"

// ErrNoCookie is returned by ReadCookie when the file has no best-score cookie.
var ErrNoCookie = errors.New("highscore: no best score cookie")

// CookieFile stores the best score as a single named cookie: a Set-Cookie
// line scoped to the root path, value a plain integer string.
type CookieFile struct {
	Path string
}

// NewCookieFile returns a cookie store at path, expanding a leading ~.
func NewCookieFile(path string) (*CookieFile, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("highscore: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return &CookieFile{Path: path}, nil
}

// Load reads the cookie. A missing file or cookie counts as a best of 0.
func (c *CookieFile) Load() (int, error) {
	score, err := ReadCookie(c.Path)
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, ErrNoCookie) {
		return 0, nil
	}
	return score, err
}

// Save overwrites the cookie with score.
func (c *CookieFile) Save(score int) error {
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory: %w", err)
	}

	cookie := &http.Cookie{
		Name:  CookieName,
		Value: strconv.Itoa(score),
		Path:  "/",
	}
	if err := os.WriteFile(c.Path, []byte(cookie.String()+"\n"), 0o600); err != nil {
		return fmt.Errorf("highscore: cannot write cookie: %w", err)
	}
	return nil
}

// ReadCookie parses the best score from a cookie file.
func ReadCookie(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read cookie: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cookie, err := http.ParseSetCookie(line)
		if err != nil || cookie.Name != CookieName {
			continue
		}
		score, err := strconv.Atoi(cookie.Value)
		if err != nil {
			return 0, fmt.Errorf("highscore: cookie value %q is not an integer: %w", cookie.Value, err)
		}
		return score, nil
	}
	return 0, ErrNoCookie
}

// CookieStores returns a store opener for NewTrackers that keeps one cookie
// file per mode in dir, named <mode>.cookie. A mode whose file cannot be
// resolved keeps its best in memory.
func CookieStores(dir string) func(mode string) Store {
	return func(mode string) Store {
		c, err := NewCookieFile(filepath.Join(dir, mode+".cookie"))
		if err != nil {
			return nil
		}
		return c
	}
}
