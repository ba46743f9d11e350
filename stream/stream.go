// Package stream receives server events over a websocket.
package stream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/websocket"

	"github.com/mqy/gchat/auth"
	pb "github.com/mqy/gchat/proto"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 3 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = 20 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 25 * time.Second

	// websocket max message size to read.
	readLimit = 1 << 20

	handshakeTimeout = 10 * time.Second
)

// IEventStream delivers event batches until the connection ends.
type IEventStream interface {
	// Run blocks until ctx is done, returning nil, or the connection fails.
	Run(ctx context.Context, handle func(events []*pb.Event)) error
}

// Client is a websocket IEventStream. Each binary message holds one or more
// length prefixed StreamEventsResponse records; each record is one batch.
type Client struct {
	url    string
	auth   auth.Client
	dialer *websocket.Dialer

	sync.Mutex
	conn    *websocket.Conn
	closing bool
}

func NewClient(url string, a auth.Client) *Client {
	return &Client{
		url:  url,
		auth: a,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
			ReadBufferSize:   4096,
			WriteBufferSize:  1024,
		},
	}
}

func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	token, err := c.auth.Token()
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	conn, resp, err := c.dialer.DialContext(ctx, c.url, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("stream: dial %s: %s: %w", c.url, resp.Status, err)
		}
		return nil, fmt.Errorf("stream: dial %s: %w", c.url, err)
	}
	return conn, nil
}

func (c *Client) Run(ctx context.Context, handle func([]*pb.Event)) error {
	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}
	c.Lock()
	c.conn = conn
	c.closing = false
	c.Unlock()
	glog.Infof("stream: connected to %s", c.url)

	done := make(chan struct{})
	defer close(done)
	go c.sendLoop(ctx, done)

	err = c.recvLoop(handle)
	c.close()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (c *Client) close() {
	c.Lock()
	defer c.Unlock()
	if c.closing || c.conn == nil {
		return
	}
	c.closing = true

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
	c.conn.Close()
}

func (c *Client) recvLoop(handle func([]*pb.Event)) error {
	defer glog.V(5).Infof("stream: recvLoop exited")

	c.conn.SetReadLimit(readLimit)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		msgType, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return errors.New("stream: closed by server")
			}
			return fmt.Errorf("stream: read: %w", err)
		}
		c.conn.SetReadDeadline(time.Now().Add(pongWait))

		if msgType != websocket.BinaryMessage {
			glog.Errorf("stream: unexpected message type: %d", msgType)
			continue
		}
		batches, err := SplitFrame(msg)
		if err != nil {
			// a broken frame means the byte stream is out of sync.
			return err
		}
		for _, b := range batches {
			glog.V(5).Infof("stream: %d events", len(b.GetEvents()))
			if len(b.GetEvents()) > 0 {
				handle(b.GetEvents())
			}
		}
	}
}

// sendLoop keeps the connection alive and closes it when ctx ends.
func (c *Client) sendLoop(ctx context.Context, done <-chan struct{}) {
	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			c.close()
			return
		case <-pingTicker.C:
			c.Lock()
			if c.closing {
				c.Unlock()
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := c.conn.WriteMessage(websocket.PingMessage, nil)
			c.Unlock()
			if err != nil {
				glog.Errorf("stream: ping: %v", err)
				c.close()
				return
			}
		}
	}
}
