package stream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqy/gchat/auth"
	pb "github.com/mqy/gchat/proto"
)

func batch(ts ...int64) *pb.StreamEventsResponse {
	resp := &pb.StreamEventsResponse{}
	for _, t := range ts {
		resp.Events = append(resp.Events, &pb.Event{GroupRevision: &pb.RevisionTimestamp{Timestamp: t}})
	}
	return resp
}

func TestSplitFrame(t *testing.T) {
	frame, err := AppendFrame(nil, batch(1, 2))
	require.NoError(t, err)
	frame, err = AppendFrame(frame, batch(3))
	require.NoError(t, err)
	frame, err = AppendFrame(frame, batch())
	require.NoError(t, err)

	got, err := SplitFrame(frame)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Len(t, got[0].Events, 2)
	assert.Equal(t, int64(3), got[1].Events[0].GroupRevision.Timestamp)
	assert.Empty(t, got[2].Events)

	_, err = SplitFrame(frame[:len(frame)-3])
	assert.ErrorIs(t, err, ErrBadFrame)
	_, err = SplitFrame([]byte{0xff})
	assert.ErrorIs(t, err, ErrBadFrame)

	got, err = SplitFrame(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func serve(t *testing.T, fn func(conn *websocket.Conn)) string {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		fn(conn)
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestRunDeliversBatches(t *testing.T) {
	url := serve(t, func(conn *websocket.Conn) {
		frame, _ := AppendFrame(nil, batch(1, 2))
		frame, _ = AppendFrame(frame, batch(3))
		_ = conn.WriteMessage(websocket.BinaryMessage, frame)
		_ = conn.WriteMessage(websocket.TextMessage, []byte("ignored"))
		frame, _ = AppendFrame(nil, batch())
		frame, _ = AppendFrame(frame, batch(4))
		_ = conn.WriteMessage(websocket.BinaryMessage, frame)
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		time.Sleep(100 * time.Millisecond)
	})

	var sizes []int
	err := NewClient(url, auth.NewStaticClient("tok")).Run(context.Background(), func(events []*pb.Event) {
		sizes = append(sizes, len(events))
	})
	assert.Error(t, err)
	assert.Equal(t, []int{2, 1, 1}, sizes)
}

func TestRunBadFrame(t *testing.T) {
	url := serve(t, func(conn *websocket.Conn) {
		_ = conn.WriteMessage(websocket.BinaryMessage, []byte{0x05, 0x01})
		time.Sleep(100 * time.Millisecond)
	})

	err := NewClient(url, auth.NewStaticClient("tok")).Run(context.Background(), func([]*pb.Event) {
		t.Fatal("unexpected batch")
	})
	assert.ErrorIs(t, err, ErrBadFrame)
}

func TestRunStopsOnCancel(t *testing.T) {
	url := serve(t, func(conn *websocket.Conn) {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewClient(url, auth.NewStaticClient("tok")).Run(ctx, func([]*pb.Event) {})
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestRunDialError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := NewClient("ws"+strings.TrimPrefix(srv.URL, "http"), auth.NewStaticClient("tok")).
		Run(context.Background(), func([]*pb.Event) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
