package auth

import "fmt"

type Client interface {
	// Token returns the session auth token of current account.
	Token() (string, error)
}

// StaticClient serves a token fixed at startup.
type StaticClient struct {
	token string
}

func NewStaticClient(token string) *StaticClient {
	return &StaticClient{token: token}
}

func (c *StaticClient) Token() (string, error) {
	if c.token == "" {
		return "", fmt.Errorf("empty auth token")
	}
	return c.token, nil
}
