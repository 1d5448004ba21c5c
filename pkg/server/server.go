package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/typeahead/pkg/config"
	"github.com/bastiangx/typeahead/pkg/suggest"
	"github.com/bastiangx/typeahead/pkg/token"
)

// Server handles the IPC for the completion engine.
type Server struct {
	source suggest.Source
	cfg    *config.Config
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
}

// NewServer creates a completion server using stdin/stdout for IPC.
func NewServer(source suggest.Source, cfg *config.Config) *Server {
	return NewServerIO(source, cfg, os.Stdin, os.Stdout)
}

// NewServerIO creates a completion server on an arbitrary stream pair.
func NewServerIO(source suggest.Source, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		source: source,
		cfg:    cfg,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on EOF.
func (s *Server) Start() error {
	log.Debug("Starting server.")

	// Signal that the server is ready
	s.send(StatusResponse{Status: "ready"})

	for {
		// Decode the frame generically first: a wrong-typed field inside
		// an otherwise well-framed message must not desync the stream.
		raw, err := s.dec.DecodeInterface()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			// Byte-level corruption, the stream can no longer be framed.
			log.Errorf("Decoding request frame: %v", err)
			return err
		}
		s.handleFrame(raw)
	}
}

// handleFrame binds a decoded frame to a Request and dispatches it.
// Binding failures answer with an error response and keep the stream up.
func (s *Server) handleFrame(raw interface{}) {
	data, err := msgpack.Marshal(raw)
	if err != nil {
		s.sendError(frameID(raw), "Internal server error", 500)
		log.Errorf("Re-encoding request frame: %v", err)
		return
	}

	var request Request
	if err := msgpack.Unmarshal(data, &request); err != nil {
		s.sendError(frameID(raw), fmt.Sprintf("Malformed request: %v", err), 400)
		log.Errorf("Unmarshaling request: %v", err)
		return
	}
	s.handleRequest(request)
}

// frameID salvages the request ID from a malformed frame when possible,
// so the host can still correlate the error response.
func frameID(raw interface{}) string {
	fields, ok := raw.(map[string]interface{})
	if !ok {
		return ""
	}
	id, _ := fields["id"].(string)
	return id
}

// handleRequest dispatches an incoming request by command
func (s *Server) handleRequest(request Request) {
	switch request.Cmd {
	case "complete":
		s.handleComplete(request)
	case "apply":
		s.handleApply(request)
	case "table":
		s.handleTable(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown command: %s", request.Cmd), 400)
	}
}

// handleComplete resolves a token to its candidate list. It validates the
// token against the configured length bounds, times the lookup, and caps
// the result at the requested (or configured) limit.
func (s *Server) handleComplete(request Request) {
	tok := request.Token

	if tok == "" {
		s.sendError(request.ID, "Missing 't' parameter", 400)
		log.Debug("Token is empty in request")
		return
	}

	if len(tok) < s.cfg.Widget.MinTokenLen {
		s.sendError(request.ID, fmt.Sprintf("Token must be at least %d characters", s.cfg.Widget.MinTokenLen), 400)
		return
	}

	if len(tok) > s.cfg.Widget.MaxTokenLen {
		s.sendError(request.ID, fmt.Sprintf("Token exceeds maximum length of %d characters", s.cfg.Widget.MaxTokenLen), 400)
		return
	}

	limit := request.Limit
	if limit < 1 || limit > s.cfg.Widget.MaxCandidates {
		limit = s.cfg.Widget.MaxCandidates
	}

	start := time.Now()
	candidates := s.source.Lookup(tok)
	elapsed := time.Since(start)

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	if candidates == nil {
		candidates = []string{}
	}

	s.send(CompletionResponse{
		ID:         request.ID,
		Candidates: candidates,
		Count:      len(candidates),
		TimeTaken:  elapsed.Microseconds(),
	})
}

// handleApply splices the chosen candidate into the supplied buffer.
func (s *Server) handleApply(request Request) {
	if request.Choice == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		return
	}

	buffer, caret := token.Splice(request.Buffer, request.Caret, request.Choice)
	s.send(ApplyResponse{
		ID:     request.ID,
		Buffer: buffer,
		Caret:  caret,
	})
}

// handleTable reports table counters when the source exposes them.
func (s *Server) handleTable(request Request) {
	stats, ok := s.source.(interface{ Stats() map[string]int })
	if !ok {
		s.sendError(request.ID, "Table stats unavailable for this source", 501)
		return
	}

	counters := stats.Stats()
	s.send(TableResponse{
		ID:         request.ID,
		Status:     "ok",
		Tokens:     counters["tokens"],
		Candidates: counters["candidates"],
	})
}

// send marshals the given response and writes it to the client.
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
