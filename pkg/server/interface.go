/*
Package server implements msgpack IPC for the completion widget engine.

Editor hosts embed the engine as a child process and speak a binary
msgpack request/response stream over stdin/stdout. Messages are processed
synchronously, one at a time, with timing info included in completion
responses. The host keeps the UI; the engine keeps the word-boundary and
lookup semantics.

# IPC

Each request carries an ID, a command, and the fields that command needs.

Completion requests resolve the token being typed:

	{"id": "req_001", "cmd": "complete", "t": "hel", "l": 8}

and come back with the ordered candidate list:

	{"id": "req_001", "c": ["hello", "help", "helmet"], "n": 3, "t": 12}

Apply requests splice a chosen candidate into a linear buffer, returning
the new buffer and caret:

	{"id": "req_002", "cmd": "apply", "b": "hello wo", "p": 8, "w": "world"}
	{"id": "req_002", "b": "hello world", "p": 11}

"table" reports the loaded table's counters and "health" answers with a
plain status. Unknown commands and malformed fields produce an error
response with a code; the stream stays up. Only byte-level corruption
that prevents framing the stream tears the session down.
*/
package server

// Request is the incoming message envelope for all commands.
type Request struct {
	ID     string `msgpack:"id"`
	Cmd    string `msgpack:"cmd"`
	Token  string `msgpack:"t,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
	Buffer string `msgpack:"b,omitempty"`
	Caret  int    `msgpack:"p,omitempty"`
	Choice string `msgpack:"w,omitempty"`
}

// CompletionResponse answers a "complete" request.
type CompletionResponse struct {
	ID         string   `msgpack:"id"`
	Candidates []string `msgpack:"c"`
	Count      int      `msgpack:"n"`
	TimeTaken  int64    `msgpack:"t"`
}

// ApplyResponse answers an "apply" request with the spliced buffer and the
// caret placed after the inserted candidate.
type ApplyResponse struct {
	ID     string `msgpack:"id"`
	Buffer string `msgpack:"b"`
	Caret  int    `msgpack:"p"`
}

// TableResponse answers a "table" request.
type TableResponse struct {
	ID         string `msgpack:"id"`
	Status     string `msgpack:"status"`
	Tokens     int    `msgpack:"tokens"`
	Candidates int    `msgpack:"candidates"`
}

// StatusResponse reports readiness and health.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id,omitempty"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
