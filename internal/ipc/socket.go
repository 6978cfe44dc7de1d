package ipc

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/user"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/wlcinput/internal/logger"
)

// maxMessageSize bounds a frame; real messages are a few dozen bytes
const maxMessageSize = 64 * 1024

// SocketServer handles incoming IPC connections
type SocketServer struct {
	mu         sync.Mutex
	listener   net.Listener
	socketPath string
	handler    MessageHandler
	metrics    *Metrics
	wg         sync.WaitGroup
	cancel     context.CancelFunc
	running    bool
}

// MessageHandler answers one request. It is called from connection
// goroutines and must serialize access to the subsystem itself.
type MessageHandler interface {
	Handle(req *Request) *Response
}

// NewSocketServer creates a new socket server. An empty socketPath uses
// the default location. metrics may be nil.
func NewSocketServer(socketPath string, handler MessageHandler, metrics *Metrics) (*SocketServer, error) {
	if socketPath == "" {
		var err error
		socketPath, err = DefaultSocketPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get socket path: %w", err)
		}
	}

	return &SocketServer{
		socketPath: socketPath,
		handler:    handler,
		metrics:    metrics,
	}, nil
}

// SocketPath returns the path the server listens on
func (s *SocketServer) SocketPath() string {
	return s.socketPath
}

// Start starts the socket server
func (s *SocketServer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	if err := os.RemoveAll(s.socketPath); err != nil {
		return fmt.Errorf("failed to remove existing socket: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.socketPath), 0755); err != nil {
		return fmt.Errorf("failed to create socket directory: %w", err)
	}

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create socket listener: %w", err)
	}

	// Set socket permissions (user only)
	if err := os.Chmod(s.socketPath, 0600); err != nil {
		listener.Close()
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	s.listener = listener
	s.running = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go s.acceptConnections(ctx)

	logger.Infof("IPC socket server started at %s", s.socketPath)
	return nil
}

// Stop stops the socket server and waits for open connections to finish
func (s *SocketServer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.running = false
	if s.cancel != nil {
		s.cancel()
	}
	if s.listener != nil {
		s.listener.Close()
	}

	s.wg.Wait()
	os.RemoveAll(s.socketPath)

	logger.Info("IPC socket server stopped")
}

func (s *SocketServer) acceptConnections(ctx context.Context) {
	defer s.wg.Done()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				return
			}
			logger.Errorf("Failed to accept connection: %v", err)
			continue
		}

		s.wg.Add(1)
		go s.handleConnection(ctx, conn)
	}
}

func (s *SocketServer) handleConnection(ctx context.Context, conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	// Unblock the read below on shutdown
	stop := context.AfterFunc(ctx, func() {
		conn.SetDeadline(time.Now())
	})
	defer stop()

	s.metrics.connectionOpened()
	defer s.metrics.connectionClosed()

	logger.Debug("New IPC connection established")

	for {
		data, err := readFrame(conn)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Debugf("Connection closed or read error: %v", err)
			}
			return
		}

		start := time.Now()
		response := s.handleMessage(data)
		if err := writeFrame(conn, response.Marshal()); err != nil {
			logger.Errorf("Failed to send response: %v", err)
			return
		}
		s.metrics.observe(response.Type, time.Since(start))
	}
}

// handleMessage decodes and dispatches a single frame
func (s *SocketServer) handleMessage(data []byte) *Response {
	var req Request
	if err := req.Unmarshal(data); err != nil {
		return NewErrorResponse(fmt.Sprintf("invalid request: %v", err))
	}

	switch req.Type {
	case MessageTypeStatus, MessageTypePointerPosition, MessageTypeSetPointerPosition,
		MessageTypeCurrentKeys, MessageTypeKeysym, MessageTypeUTF32:
		return s.handler.Handle(&req)
	default:
		return NewErrorResponse(fmt.Sprintf("unknown message type: %s", req.Type))
	}
}

// readFrame reads a 4 byte big endian length followed by the payload
func readFrame(r io.Reader) ([]byte, error) {
	var length uint32
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read message length: %w", err)
	}
	if length > maxMessageSize {
		return nil, fmt.Errorf("message of %d bytes exceeds limit", length)
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("failed to read message data: %w", err)
	}
	return data, nil
}

// writeFrame writes a length prefixed payload
func writeFrame(w io.Writer, data []byte) error {
	buf := make([]byte, 4+len(data))
	binary.BigEndian.PutUint32(buf, uint32(len(data)))
	copy(buf[4:], data)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

// DefaultSocketPath returns $XDG_RUNTIME_DIR/wlcinput.sock, or a per user
// path under /tmp when the runtime dir is not set
func DefaultSocketPath() (string, error) {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "wlcinput.sock"), nil
	}

	currentUser, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	return filepath.Join("/tmp", fmt.Sprintf("wlcinput-%s.sock", currentUser.Username)), nil
}
