package remote

import (
	"net"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/bastionlabs/bastion-go/safety/serializer"
)

// DefaultRequestTimeout bounds a single request round trip, connection
// establishment included.
const DefaultRequestTimeout = 5 * time.Second

// Client is a serializer.Transport that reaches a safety service over TCP.
// One connection is shared across requests and requests are issued strictly
// one at a time, matching the alternating frame protocol the server speaks.
//
// A failed request is retried once on a fresh connection, to step over
// connections gone stale between requests. The retry is safe against double
// signing: the service refuses a repeated signing request for an
// already-recorded round instead of signing it again.
type Client struct {
	log     zerolog.Logger
	address string
	timeout time.Duration

	mu   sync.Mutex
	conn net.Conn
}

var _ serializer.Transport = (*Client)(nil)

// NewClient creates a client for the safety service at the given address. A
// non-positive timeout falls back to DefaultRequestTimeout. The connection
// is established lazily on the first request.
func NewClient(log zerolog.Logger, address string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Client{
		log:     log.With().Str("component", "safety_client").Str("address", address).Logger(),
		address: address,
		timeout: timeout,
	}
}

// Request sends one encoded request and waits for the response frame.
func (c *Client) Request(request []byte) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	response, err := c.roundTrip(request)
	if err == nil {
		return response, nil
	}
	c.log.Debug().Err(err).Msg("request failed, retrying on a fresh connection")
	c.disconnect()

	response, err = c.roundTrip(request)
	if err != nil {
		c.disconnect()
		return nil, err
	}
	return response, nil
}

// Close releases the connection. The client remains usable; the next request
// reconnects.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

func (c *Client) roundTrip(request []byte) ([]byte, error) {
	conn, err := c.connect()
	if err != nil {
		return nil, err
	}
	err = conn.SetDeadline(time.Now().Add(c.timeout))
	if err != nil {
		return nil, errors.Wrap(err, "could not set request deadline")
	}
	err = WriteFrame(conn, request)
	if err != nil {
		return nil, err
	}
	return ReadFrame(conn)
}

func (c *Client) connect() (net.Conn, error) {
	if c.conn != nil {
		return c.conn, nil
	}
	conn, err := net.DialTimeout("tcp", c.address, c.timeout)
	if err != nil {
		return nil, errors.Wrapf(err, "could not connect to safety service at %s", c.address)
	}
	c.log.Debug().Msg("connected to safety service")
	c.conn = conn
	return conn, nil
}

func (c *Client) disconnect() {
	if c.conn == nil {
		return
	}
	_ = c.conn.Close()
	c.conn = nil
}
