package rpc

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/mqy/gchat/auth"
)

func TestUploaderTwoSteps(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		switch r.URL.Path {
		case "/session":
			assert.Equal(t, "cat.png", gjson.GetBytes(body, "createSessionRequest.fields.0.external.filename").Str)
			assert.EqualValues(t, 3, gjson.GetBytes(body, "createSessionRequest.fields.0.external.size").Int())
			_, _ = io.WriteString(w, `{"sessionStatus":{"state":"OPEN","externalFieldTransfers":[{"name":"file","putInfo":{"url":"`+srv.URL+`/put/1"}}]}}`)
		case "/put/1":
			assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
			assert.Equal(t, []byte{1, 2, 3}, body)
			_, _ = io.WriteString(w, `{"sessionStatus":{"additionalInfo":{"info":{"completionInfo":{"customerSpecificInfo":{"photoid":"P42"}}}}}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	u := NewHTTPUploader(srv.URL+"/session", auth.NewStaticClient("tok"), time.Second)
	ctx := context.Background()

	url, err := u.CreateSession(ctx, "cat.png", 3)
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/put/1", url)

	id, err := u.Upload(ctx, url, []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "P42", id)
}

func TestUploaderMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"sessionStatus":{"state":"OPEN"}}`)
	}))
	defer srv.Close()

	u := NewHTTPUploader(srv.URL, auth.NewStaticClient("tok"), time.Second)
	_, err := u.CreateSession(context.Background(), "a.png", 1)
	assert.True(t, IsTransport(err))
	_, err = u.Upload(context.Background(), srv.URL, []byte{1})
	assert.True(t, IsTransport(err))
}

func TestFindKey(t *testing.T) {
	r := gjson.Parse(`{"a":[{"b":1},{"c":{"putInfo":{"url":"u"}}}]}`)
	assert.Equal(t, "u", findKey(r, "putInfo", "url"))
	assert.Equal(t, "", findKey(r, "missing"))
}
