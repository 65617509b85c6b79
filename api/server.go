// Package api serves the chart parser as a JSON web service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/cors"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/chartparse/format"
	"github.com/dhamidi/chartparse/grammar"
	"github.com/dhamidi/chartparse/lexer"
	"github.com/dhamidi/chartparse/parse"
)

var log = commonlog.GetLogger("chartparse.api")

// MaxRequestBytes caps the body of a parse request.
const MaxRequestBytes = 64 << 10

// Config controls a Server.
type Config struct {
	// AllowedOrigins lists the origins allowed by CORS; empty allows all.
	AllowedOrigins []string
	// Options are applied to every parser the server builds.
	Options []parse.Option
	// Lexer tokenizes the sentence text; nil splits on white space.
	Lexer *lexer.Lexer
}

type Server struct {
	grammar *grammar.Grammar
	config  Config
	mux     *http.ServeMux
	handler http.Handler
}

func NewServer(g *grammar.Grammar, config Config) *Server {
	s := &Server{
		grammar: g,
		config:  config,
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc("POST /api/parse", s.handleParse)
	s.mux.HandleFunc("GET /api/grammar", s.handleGrammar)

	c := cors.Default()
	if len(config.AllowedOrigins) > 0 {
		c = cors.New(cors.Options{
			AllowedOrigins: config.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Content-Type"},
		})
	}
	s.handler = c.Handler(s.mux)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ParseRequest is the body of POST /api/parse. Words, when given, take
// precedence over Sentence.
type ParseRequest struct {
	Sentence   string   `json:"sentence"`
	Words      []string `json:"words,omitempty"`
	Privileged []string `json:"privileged,omitempty"`
	AllStarts  bool     `json:"allStarts,omitempty"`
}

type GrammarResponse struct {
	Start       string   `json:"start"`
	Lexical     []string `json:"lexical"`
	Productions []string `json:"productions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	words := req.Words
	if words == nil {
		var err error
		words, err = s.words(req.Sentence)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	opts := append([]parse.Option{}, s.config.Options...)
	if len(req.Privileged) > 0 {
		opts = append(opts, parse.WithPrivileged(req.Privileged...))
	}
	if req.AllStarts {
		opts = append(opts, parse.WithAllStartProductions())
	}

	res, err := parse.New(s.grammar, opts...).Parse(words)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, parse.ErrNoStartProduction) || errors.Is(err, parse.ErrRowLimit) {
			status = http.StatusUnprocessableEntity
		}
		log.Warningf("parse %q: %s", req.Sentence, err)
		writeError(w, status, err.Error())
		return
	}

	data, err := format.BuildResult(res)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) words(sentence string) ([]string, error) {
	if s.config.Lexer == nil {
		return lexer.Fields(sentence), nil
	}
	return s.config.Lexer.Words(sentence)
}

func (s *Server) handleGrammar(w http.ResponseWriter, r *http.Request) {
	resp := GrammarResponse{
		Start:       s.grammar.Start,
		Lexical:     s.grammar.Lexical(),
		Productions: make([]string, len(s.grammar.Productions)),
	}
	for i, p := range s.grammar.Productions {
		resp.Productions[i] = p.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("encode response: %s", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
