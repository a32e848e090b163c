// Package api exposes the dictionary over HTTP. It is a thin transport
// mapping of the dictionary operations; all word semantics live in the
// dict and trie packages.
package api

import (
	"context"
	"encoding/json"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/kumarlokesh/stringtrie/internal/dict"
)

// Server is the HTTP API server for a dictionary.
type Server struct {
	dict   *dict.Dictionary
	server *http.Server
	logger zerolog.Logger
}

// NewServer creates an API server listening on addr.
func NewServer(addr string, d *dict.Dictionary, logger zerolog.Logger) *Server {
	s := &Server{
		dict:   d,
		logger: logger,
	}

	r := mux.NewRouter()

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Debug().Str("method", req.Method).Str("path", req.URL.Path).Msg("request")
			next.ServeHTTP(w, req)
		})
	})

	r.HandleFunc("/words", s.listWords).Methods("GET")
	r.HandleFunc("/words", s.loadWords).Methods("POST")
	r.HandleFunc("/words", s.unload).Methods("DELETE")
	r.HandleFunc("/words/{word}", s.addWord).Methods("PUT")
	r.HandleFunc("/words/{word}", s.getWord).Methods("GET")
	r.HandleFunc("/words/{word}", s.removeWord).Methods("DELETE")
	r.HandleFunc("/count", s.count).Methods("GET")

	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}

	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start listens on the configured address and serves until Shutdown.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}

	s.logger.Info().Str("addr", listener.Addr().String()).Msg("api server listening")

	if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) listWords(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	words := s.dict.SearchPrefix(prefix)
	if words == nil {
		words = []string{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"words": words,
		"count": len(words),
	})
}

func (s *Server) loadWords(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	loaded, err := s.dict.Load(r.Body)
	if err != nil {
		writeError(w, http.StatusBadGateway, "failed to read word stream")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"loaded": loaded,
		"total":  s.dict.WordCount(),
	})
}

func (s *Server) addWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	if !s.dict.Add(word) {
		writeError(w, http.StatusBadRequest, "word contains invalid symbols, is empty, or is too long")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"word": word})
}

func (s *Server) getWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	if !s.dict.Search(word) {
		writeError(w, http.StatusNotFound, "word not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"word": word})
}

func (s *Server) removeWord(w http.ResponseWriter, r *http.Request) {
	s.dict.Remove(mux.Vars(r)["word"])
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) unload(w http.ResponseWriter, r *http.Request) {
	s.dict.Unload()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) count(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"count": s.dict.WordCount()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
