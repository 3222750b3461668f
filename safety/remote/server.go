package remote

import (
	"errors"
	"io"
	"net"
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/bastionlabs/bastion-go/module/lifecycle"
	"github.com/bastionlabs/bastion-go/safety/serializer"
)

// Server accepts TCP connections and feeds their request frames into a
// serializing safety service. Connections are handled concurrently, but the
// service underneath processes one request at a time, so concurrent clients
// only compete for their place in line.
type Server struct {
	log     zerolog.Logger
	lm      *lifecycle.LifecycleManager
	service *serializer.Service
	address string

	listener atomic.Value // holds the net.Listener once bound
	wg       sync.WaitGroup

	connsMu sync.Mutex
	conns   map[net.Conn]struct{}
}

// NewServer creates a server for the given listen address. The listener is
// opened on Ready, not here, so an address like "127.0.0.1:0" resolves to
// its final port once Ready has closed.
func NewServer(log zerolog.Logger, address string, service *serializer.Service) *Server {
	return &Server{
		log:     log.With().Str("component", "safety_server").Logger(),
		lm:      lifecycle.NewLifecycleManager(),
		service: service,
		address: address,
		conns:   make(map[net.Conn]struct{}),
	}
}

// Ready opens the listener and starts accepting connections. The returned
// channel closes once the listener is bound.
func (s *Server) Ready() <-chan struct{} {
	s.lm.OnStart(func() {
		listener, err := net.Listen("tcp", s.address)
		if err != nil {
			s.log.Err(err).Str("address", s.address).Msg("could not listen")
			return
		}
		s.listener.Store(listener)
		s.wg.Add(1)
		go s.serve(listener)
		s.log.Info().Str("address", listener.Addr().String()).Msg("safety service listening")
	})
	return s.lm.Started()
}

// Done closes the listener and all open connections, then waits for the
// connection handlers to drain. The returned channel closes once shutdown is
// complete.
func (s *Server) Done() <-chan struct{} {
	s.lm.OnStop(func() {
		if listener, ok := s.listener.Load().(net.Listener); ok {
			_ = listener.Close()
		}
		s.closeConns()
		s.wg.Wait()
		s.log.Info().Msg("safety service stopped")
	})
	return s.lm.Stopped()
}

// Address returns the bound listener address. It is nil until the listener
// has been bound, and stays nil if binding failed.
func (s *Server) Address() net.Addr {
	listener, ok := s.listener.Load().(net.Listener)
	if !ok {
		return nil
	}
	return listener.Addr()
}

func (s *Server) serve(listener net.Listener) {
	defer s.wg.Done()
	for {
		conn, err := listener.Accept()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				s.log.Err(err).Msg("could not accept connection")
			}
			return
		}
		s.trackConn(conn)
		s.wg.Add(1)
		go s.handleConn(conn)
	}
}

// handleConn answers request frames on one connection until the peer
// disconnects or a frame cannot be handled. A response that cannot be
// produced closes the connection rather than leaving the peer waiting on a
// reply that will never come.
func (s *Server) handleConn(conn net.Conn) {
	defer s.wg.Done()
	defer s.forgetConn(conn)
	defer func() {
		_ = conn.Close()
	}()

	log := s.log.With().Str("remote", conn.RemoteAddr().String()).Logger()
	log.Debug().Msg("connection accepted")

	for {
		request, err := ReadFrame(conn)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				log.Debug().Msg("connection closed")
			} else {
				log.Warn().Err(err).Msg("could not read request frame")
			}
			return
		}

		response, err := s.service.Process(request)
		if err != nil {
			log.Err(err).Msg("could not process request")
			return
		}

		err = WriteFrame(conn, response)
		if err != nil {
			log.Warn().Err(err).Msg("could not write response frame")
			return
		}
	}
}

func (s *Server) trackConn(conn net.Conn) {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	s.conns[conn] = struct{}{}
}

func (s *Server) forgetConn(conn net.Conn) {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	delete(s.conns, conn)
}

func (s *Server) closeConns() {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	for conn := range s.conns {
		_ = conn.Close()
	}
}
