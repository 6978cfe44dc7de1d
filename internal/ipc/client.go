package ipc

import (
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"

	"github.com/bnema/wlcinput/input"
	"github.com/bnema/wlcinput/internal/logger"
)

var (
	ErrServerNotRunning   = errors.New("wlcinput daemon is not running")
	ErrUnexpectedResponse = errors.New("unexpected response type")
)

// Client queries a running wlcinput daemon
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a client for socketPath, or the default path when
// empty
func NewClient(socketPath string, timeout time.Duration) (*Client, error) {
	if socketPath == "" {
		var err error
		socketPath, err = DefaultSocketPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get socket path: %w", err)
		}
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Client{socketPath: socketPath, timeout: timeout}, nil
}

// Status returns the name of the daemon's backend
func (c *Client) Status() (string, error) {
	resp, err := c.call(&Request{Type: MessageTypeStatus})
	if err != nil {
		return "", err
	}
	return resp.Backend, nil
}

// IsRunning reports whether a daemon answers on the socket
func (c *Client) IsRunning() bool {
	_, err := c.Status()
	return err == nil
}

// PointerPosition returns the daemon's cursor position
func (c *Client) PointerPosition() (input.Point, error) {
	resp, err := c.call(&Request{Type: MessageTypePointerPosition})
	if err != nil {
		return input.Point{}, err
	}
	return input.Point{X: resp.X, Y: resp.Y}, nil
}

// SetPointerPosition moves the cursor and returns where it ended up
func (c *Client) SetPointerPosition(p input.Point) (input.Point, error) {
	resp, err := c.call(&Request{Type: MessageTypeSetPointerPosition, X: p.X, Y: p.Y})
	if err != nil {
		return input.Point{}, err
	}
	return input.Point{X: resp.X, Y: resp.Y}, nil
}

// CurrentKeys returns the keys held on the daemon's keyboard
func (c *Client) CurrentKeys() (input.KeySnapshot, error) {
	resp, err := c.call(&Request{Type: MessageTypeCurrentKeys})
	if err != nil {
		return nil, err
	}
	if resp.Keys == nil {
		return input.KeySnapshot{}, nil
	}
	return input.KeySnapshot(resp.Keys), nil
}

// Keysym translates key remotely and returns the keysym code and name
func (c *Client) Keysym(key uint32, mods input.KeyModifiers) (uint32, string, error) {
	resp, err := c.call(&Request{Type: MessageTypeKeysym, Key: key, Mods: uint32(mods.Mods), Leds: uint32(mods.Leds)})
	if err != nil {
		return 0, "", err
	}
	return resp.Keysym, resp.KeysymName, nil
}

// UTF32 translates key remotely to a code point, 0 meaning none
func (c *Client) UTF32(key uint32, mods input.KeyModifiers) (uint32, error) {
	resp, err := c.call(&Request{Type: MessageTypeUTF32, Key: key, Mods: uint32(mods.Mods), Leds: uint32(mods.Leds)})
	if err != nil {
		return 0, err
	}
	return resp.UTF32, nil
}

// call sends one request over a fresh connection and checks the reply type
func (c *Client) call(req *Request) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ENOENT) {
			return nil, ErrServerNotRunning
		}
		return nil, fmt.Errorf("failed to connect to wlcinput daemon: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Debugf("Failed to close IPC connection: %v", err)
		}
	}()

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		logger.Warnf("Failed to set connection deadline: %v", err)
	}

	if err := writeFrame(conn, req.Marshal()); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	data, err := readFrame(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := resp.Unmarshal(data); err != nil {
		return nil, err
	}

	switch resp.Type {
	case req.Type:
		return &resp, nil
	case MessageTypeError:
		return nil, fmt.Errorf("server error: %s", resp.Error)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedResponse, resp.Type)
	}
}
