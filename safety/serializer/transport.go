package serializer

// Transport carries one encoded request to a serializing service and returns
// the encoded response. Implementations decide where the service lives: in
// the same process, behind a unix socket, or across a TCP connection.
type Transport interface {
	Request(request []byte) ([]byte, error)
}

// LocalTransport hands requests directly to a Service in the same process.
type LocalTransport struct {
	service *Service
}

var _ Transport = (*LocalTransport)(nil)

// NewLocalTransport creates a transport bound to the given service.
func NewLocalTransport(service *Service) *LocalTransport {
	return &LocalTransport{service: service}
}

// Request forwards the encoded request to the service.
func (t *LocalTransport) Request(request []byte) ([]byte, error) {
	return t.service.Process(request)
}
