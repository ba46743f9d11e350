package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[account]
token = "tok"

[endpoints]
api = "https://chat.example.com/api/v1"
stream = "wss://chat.example.com/events"
upload = "https://chat.example.com/upload"

[client]
hide_self = true
presence_poll_secs = 30

[kafka]
brokers = ["127.0.0.1:9092"]
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gchat.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tok", cfg.Account.Token)
	assert.Equal(t, TransportHTTP, cfg.Endpoints.Transport)
	assert.True(t, cfg.Client.HideSelf)
	assert.Equal(t, 30*time.Second, cfg.PresencePollInterval())
	assert.Equal(t, 30*time.Second, cfg.RPCTimeout())
	assert.Equal(t, int32(500), cfg.Client.CatchUpPageSize)
	assert.Equal(t, []string{"127.0.0.1:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "gchat-notifications", cfg.Kafka.Topic)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("[account"))
	assert.Error(t, err)

	cases := map[string]string{
		"no token": `
[endpoints]
api = "https://a"
stream = "wss://a"`,
		"both tokens": `
[account]
token = "t"
token_file = "/f"
[endpoints]
api = "https://a"
stream = "wss://a"`,
		"bad transport": `
[account]
token = "t"
[endpoints]
transport = "carrier-pigeon"
stream = "wss://a"`,
		"grpc without addr": `
[account]
token = "t"
[endpoints]
transport = "grpc"
stream = "wss://a"`,
		"stream scheme": `
[account]
token = "t"
[endpoints]
api = "https://a"
stream = "https://a"`,
		"poll too fast": `
[account]
token = "t"
[endpoints]
api = "https://a"
stream = "wss://a"
[client]
presence_poll_secs = 1`,
		"page size": `
[account]
token = "t"
[endpoints]
api = "https://a"
stream = "wss://a"
[client]
catch_up_page_size = 0`,
		"kafka topic": `
[account]
token = "t"
[endpoints]
api = "https://a"
stream = "wss://a"
[kafka]
brokers = ["b:9092"]
topic = ""`,
	}
	for name, data := range cases {
		_, err := Parse([]byte(data))
		assert.Error(t, err, name)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account.token")
	assert.Contains(t, err.Error(), "endpoints.api")
	assert.Contains(t, err.Error(), "endpoints.stream")
}

func TestGRPC(t *testing.T) {
	cfg, err := Parse([]byte(`
[account]
token_file = "/run/gchat/token"
[endpoints]
transport = "grpc"
grpc_addr = "chat.example.com:443"
stream = "wss://chat.example.com/events"
`))
	require.NoError(t, err)
	assert.Equal(t, TransportGRPC, cfg.Endpoints.Transport)
	assert.Equal(t, "/run/gchat/token", cfg.Account.TokenFile)
}
