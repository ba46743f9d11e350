package roster

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/zeebo/blake3"
)

const maxAvatarBytes = 4 << 20

// Avatar is a downloaded buddy photo.
type Avatar struct {
	// Checksum is the hex blake3 digest of Data.
	Checksum string
	Data     []byte
}

type IAvatarFetcher interface {
	Fetch(ctx context.Context, url string) (*Avatar, error)
}

// NormalizeAvatarURL turns scheme-relative urls into https urls.
func NormalizeAvatarURL(url string) string {
	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}
	return url
}

func Checksum(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HTTPAvatarFetcher downloads avatars with plain GET requests.
type HTTPAvatarFetcher struct {
	client *http.Client
}

func NewHTTPAvatarFetcher(timeout time.Duration) *HTTPAvatarFetcher {
	return &HTTPAvatarFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *HTTPAvatarFetcher) Fetch(ctx context.Context, url string) (*Avatar, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, NormalizeAvatarURL(url), nil)
	if err != nil {
		return nil, fmt.Errorf("avatar request: %w", err)
	}
	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("avatar fetch: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("avatar fetch: http status %d", res.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(res.Body, maxAvatarBytes+1))
	if err != nil {
		return nil, fmt.Errorf("avatar read: %w", err)
	}
	if len(data) > maxAvatarBytes {
		return nil, fmt.Errorf("avatar exceeds max limit: %d bytes", maxAvatarBytes)
	}
	return &Avatar{Checksum: Checksum(data), Data: data}, nil
}
