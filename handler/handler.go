// Package handler serves the parsers over HTTP and WebSocket.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Protocol-Lattice/sdl/ast"
	"github.com/Protocol-Lattice/sdl/cache"
	"github.com/Protocol-Lattice/sdl/engine"
	"github.com/Protocol-Lattice/sdl/errs"
	"github.com/Protocol-Lattice/sdl/lexer"
	"github.com/Protocol-Lattice/sdl/parser"
	"github.com/Protocol-Lattice/sdl/token"
)

// Parse modes.
const (
	ModeSchema = "schema"
	ModeQuery  = "query"
)

// Engines.
const (
	EngineTokens  = "tokens"
	EngineGrammar = "grammar"
)

// ParseRequest asks for source text to be parsed.
type ParseRequest struct {
	Source string `json:"source"`
	Mode   string `json:"mode,omitempty"`   // schema (default) or query
	Engine string `json:"engine,omitempty"` // tokens or grammar
}

// ParseResponse carries a parsed document, a token list, or an error.
type ParseResponse struct {
	RequestID string        `json:"requestId"`
	Document  *ast.Document `json:"document,omitempty"`
	Tokens    []token.Token `json:"tokens,omitempty"`
	Cached    bool          `json:"cached,omitempty"`
	Error     *errs.Error   `json:"error,omitempty"`
	Message   string        `json:"message,omitempty"` // request problems that are not parse errors
}

// Options configures a Handler.
type Options struct {
	Logger        *slog.Logger
	Cache         *cache.Cache[*ast.Document] // nil disables caching
	MaxInputBytes int
	Engine        string // default engine
}

// Handler routes /parse, /tokens and /ws.
type Handler struct {
	log      *slog.Logger
	cache    *cache.Cache[*ast.Document]
	maxBytes int64
	engine   string
	mux      *http.ServeMux
}

// New creates a Handler.
func New(opts Options) *Handler {
	h := &Handler{
		log:      opts.Logger,
		cache:    opts.Cache,
		maxBytes: int64(opts.MaxInputBytes),
		engine:   opts.Engine,
		mux:      http.NewServeMux(),
	}
	if h.log == nil {
		h.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if h.maxBytes <= 0 {
		h.maxBytes = 1 << 20
	}
	if h.engine == "" {
		h.engine = EngineTokens
	}
	h.mux.HandleFunc("/parse", h.Parse)
	h.mux.HandleFunc("/tokens", h.Tokens)
	h.mux.HandleFunc("/ws", h.Stream)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// requestError is a malformed request, as opposed to malformed source.
type requestError struct {
	status int
	msg    string
}

func (e *requestError) Error() string { return e.msg }

func badRequest(format string, args ...interface{}) *requestError {
	return &requestError{status: http.StatusBadRequest, msg: fmt.Sprintf(format, args...)}
}

// Parse handles POST /parse. The body is a JSON ParseRequest, or a
// multipart form with the source in a "source" file and optional "mode"
// and "engine" fields.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	id := h.begin(w, r)
	req, err := h.readRequest(w, r)
	if err != nil {
		h.fail(w, id, err)
		return
	}
	start := time.Now()
	doc, cached, err := h.parse(req)
	h.log.Info("parse",
		"request_id", id,
		"mode", req.Mode,
		"engine", req.Engine,
		"bytes", len(req.Source),
		"cached", cached,
		"duration", time.Since(start),
		"error", errString(err),
	)
	if err != nil {
		h.fail(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, ParseResponse{RequestID: id, Document: doc, Cached: cached})
}

// Tokens handles POST /tokens.
func (h *Handler) Tokens(w http.ResponseWriter, r *http.Request) {
	id := h.begin(w, r)
	req, err := h.readRequest(w, r)
	if err != nil {
		h.fail(w, id, err)
		return
	}
	tokens, err := lexer.Tokenize(req.Source)
	h.log.Info("tokens", "request_id", id, "bytes", len(req.Source), "tokens", len(tokens), "error", errString(err))
	if err != nil {
		h.fail(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, ParseResponse{RequestID: id, Tokens: tokens})
}

// upgrader upgrades HTTP connections to WebSocket connections.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Stream handles GET /ws. Every text message is a ParseRequest and is
// answered with one ParseResponse until the client closes.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(h.maxBytes + 1024)

	session := uuid.New().String()
	h.log.Info("websocket open", "session", session, "remote", r.RemoteAddr)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Warn("websocket read", "session", session, "error", err)
			}
			break
		}
		resp := ParseResponse{RequestID: uuid.New().String()}
		var req ParseRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			resp.Message = "invalid request JSON"
		} else if err := h.normalize(&req); err != nil {
			resp.Message = err.Error()
		} else {
			doc, cached, err := h.parse(req)
			resp.Document, resp.Cached = doc, cached
			if err != nil {
				resp.Error, resp.Message = asParseError(err)
			}
			h.log.Info("websocket parse", "session", session, "request_id", resp.RequestID, "mode", req.Mode, "error", errString(err))
		}
		if err := conn.WriteJSON(resp); err != nil {
			h.log.Warn("websocket write", "session", session, "error", err)
			break
		}
	}
	h.log.Info("websocket closed", "session", session)
}

func (h *Handler) begin(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get("X-Request-Id")
	if id == "" {
		id = uuid.New().String()
	}
	w.Header().Set("X-Request-Id", id)
	return id
}

func (h *Handler) readRequest(w http.ResponseWriter, r *http.Request) (ParseRequest, error) {
	var req ParseRequest
	if r.Method != http.MethodPost {
		return req, &requestError{status: http.StatusMethodNotAllowed, msg: "method not allowed"}
	}
	// Room for the JSON or multipart envelope around the source.
	limit := h.maxBytes + 4096
	if r.ContentLength > limit {
		return req, errTooLarge
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	defer r.Body.Close()

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(h.maxBytes); err != nil {
			if tooLarge(err) {
				return req, errTooLarge
			}
			return req, badRequest("failed to parse multipart form: %v", err)
		}
		file, _, err := r.FormFile("source")
		if err != nil {
			return req, badRequest("missing source file")
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return req, badRequest("failed to read source file: %v", err)
		}
		req = ParseRequest{Source: string(data), Mode: r.FormValue("mode"), Engine: r.FormValue("engine")}
	} else {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			if tooLarge(err) {
				return req, errTooLarge
			}
			return req, badRequest("unable to read body")
		}
		if err := json.Unmarshal(body, &req); err != nil {
			return req, badRequest("invalid JSON")
		}
	}
	return req, h.normalize(&req)
}

var errTooLarge = &requestError{status: http.StatusRequestEntityTooLarge, msg: "request too large"}

func tooLarge(err error) bool {
	var e *http.MaxBytesError
	return errors.As(err, &e)
}

func (h *Handler) normalize(req *ParseRequest) error {
	if int64(len(req.Source)) > h.maxBytes {
		return &requestError{status: http.StatusRequestEntityTooLarge, msg: "source too large"}
	}
	if req.Mode == "" {
		req.Mode = ModeSchema
	}
	if req.Engine == "" {
		req.Engine = h.engine
	}
	if req.Mode != ModeSchema && req.Mode != ModeQuery {
		return badRequest("unknown mode %q", req.Mode)
	}
	if req.Engine != EngineTokens && req.Engine != EngineGrammar {
		return badRequest("unknown engine %q", req.Engine)
	}
	return nil
}

// parse runs the selected parser, going through the cache when enabled.
func (h *Handler) parse(req ParseRequest) (*ast.Document, bool, error) {
	run := func() (*ast.Document, error) { return ParseWith(req.Mode, req.Engine, req.Source) }
	if h.cache == nil {
		doc, err := run()
		return doc, false, err
	}
	return h.cache.GetOrSet(cache.Key(req.Mode, req.Engine, req.Source), run)
}

// ParseWith parses source in the given mode with the given engine.
func ParseWith(mode, engineName, source string) (*ast.Document, error) {
	switch {
	case mode == ModeQuery && engineName == EngineGrammar:
		return engine.ParseQuery(source)
	case mode == ModeQuery:
		return parser.ParseQuery(source)
	case engineName == EngineGrammar:
		return engine.ParseSchema(source)
	}
	return parser.ParseSchema(source)
}

func (h *Handler) fail(w http.ResponseWriter, id string, err error) {
	var re *requestError
	if errors.As(err, &re) {
		writeJSON(w, re.status, ParseResponse{RequestID: id, Message: re.msg})
		return
	}
	pe, msg := asParseError(err)
	writeJSON(w, http.StatusUnprocessableEntity, ParseResponse{RequestID: id, Error: pe, Message: msg})
}

func asParseError(err error) (*errs.Error, string) {
	var pe *errs.Error
	if errors.As(err, &pe) {
		return pe, ""
	}
	return nil, err.Error()
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
