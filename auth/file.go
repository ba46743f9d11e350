package auth

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// FileClient reads the token from a file that an external login tool keeps fresh.
// The file is re-read when its modification time changes.
type FileClient struct {
	path string

	sync.Mutex
	token   string
	modTime time.Time
}

func NewFileClient(path string) *FileClient {
	return &FileClient{path: path}
}

func (c *FileClient) Token() (string, error) {
	fi, err := os.Stat(c.path)
	if err != nil {
		return "", fmt.Errorf("stat token file: %w", err)
	}

	c.Lock()
	defer c.Unlock()

	if c.token != "" && fi.ModTime().Equal(c.modTime) {
		return c.token, nil
	}

	content, err := os.ReadFile(c.path)
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	token := strings.TrimSpace(string(content))
	if token == "" {
		return "", fmt.Errorf("token file `%s` is empty", c.path)
	}
	c.token = token
	c.modTime = fi.ModTime()
	return token, nil
}
