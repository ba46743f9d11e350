package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/tidwall/gjson"
	"google.golang.org/grpc/codes"

	"github.com/mqy/gchat/auth"
)

const (
	methodUploadSession = "upload_session"
	methodUploadBytes   = "upload_bytes"
)

// HTTPUploader talks to the resumable upload endpoint.
type HTTPUploader struct {
	sessionURL string
	auth       auth.Client
	client     *http.Client
	timeout    time.Duration
}

func NewHTTPUploader(sessionURL string, a auth.Client, timeout time.Duration) *HTTPUploader {
	return &HTTPUploader{
		sessionURL: sessionURL,
		auth:       a,
		// the session endpoint answers with a redirect that must not be followed.
		client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
		},
		timeout: timeout,
	}
}

type uploadField struct {
	External *uploadExternal `json:"external,omitempty"`
	Inlined  *uploadInlined  `json:"inlined,omitempty"`
}

type uploadExternal struct {
	Name     string   `json:"name"`
	Filename string   `json:"filename"`
	Put      struct{} `json:"put"`
	Size     int      `json:"size"`
}

type uploadInlined struct {
	Name        string `json:"name"`
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
}

type createSessionBody struct {
	ProtocolVersion      string `json:"protocolVersion"`
	CreateSessionRequest struct {
		Fields []uploadField `json:"fields"`
	} `json:"createSessionRequest"`
}

func (u *HTTPUploader) CreateSession(ctx context.Context, filename string, size int) (string, error) {
	var body createSessionBody
	body.ProtocolVersion = "0.8"
	body.CreateSessionRequest.Fields = []uploadField{
		{External: &uploadExternal{Name: "file", Filename: filename, Size: size}},
		{Inlined: &uploadInlined{Name: "client", Content: "gchat", ContentType: "text/plain"}},
	}
	data, err := json.Marshal(&body)
	if err != nil {
		return "", newError(methodUploadSession, codes.Internal, err)
	}

	resp, err := u.post(ctx, methodUploadSession, u.sessionURL, "application/x-www-form-urlencoded;charset=UTF-8", data)
	if err != nil {
		return "", err
	}
	url := findKey(gjson.ParseBytes(resp), "putInfo", "url")
	if url == "" {
		return "", newError(methodUploadSession, codes.DataLoss, fmt.Errorf("no putInfo.url in response"))
	}
	return url, nil
}

func (u *HTTPUploader) Upload(ctx context.Context, uploadURL string, data []byte) (string, error) {
	resp, err := u.post(ctx, methodUploadBytes, uploadURL, "application/octet-stream", data)
	if err != nil {
		return "", err
	}
	id := findKey(gjson.ParseBytes(resp), "photoid")
	if id == "" {
		return "", newError(methodUploadBytes, codes.DataLoss, fmt.Errorf("no photoid in response"))
	}
	return id, nil
}

func (u *HTTPUploader) post(ctx context.Context, method, url, contentType string, body []byte) ([]byte, error) {
	token, err := u.auth.Token()
	if err != nil {
		return nil, newError(method, codes.Unauthenticated, err)
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, newError(method, codes.InvalidArgument, err)
	}
	r.Header.Set("Content-Type", contentType)
	r.Header.Set("Authorization", "Bearer "+token)

	res, err := u.client.Do(r)
	if err != nil {
		return nil, newError(method, ctxCode(ctx, codes.Unavailable), err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return nil, newError(method, ctxCode(ctx, codes.Unavailable), err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, newError(method, codeFromHTTPStatus(res.StatusCode), fmt.Errorf("http status %d", res.StatusCode))
	}
	glog.V(5).Infof("rpc: %s response: %s", method, strings.TrimSpace(string(data)))
	return data, nil
}

// findKey returns the first string found at path below any depth of r.
func findKey(r gjson.Result, path ...string) string {
	if v := r.Get(strings.Join(path, ".")); v.Exists() && v.Type == gjson.String {
		return v.Str
	}
	var found string
	if r.IsObject() || r.IsArray() {
		r.ForEach(func(_, v gjson.Result) bool {
			found = findKey(v, path...)
			return found == ""
		})
	}
	return found
}
