// Package fakebackend is an in-memory stand-in for the portfolio REST API.
// It records every request so tests can assert on methods, paths and the
// Authorization header the client sent.
package fakebackend

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Request is one recorded call.
type Request struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	Body          []byte
}

// Server is a running fake backend.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	requests    []Request
	collections map[string][]map[string]interface{}
	singles     map[string]interface{}
	failures    map[string]int

	// Email, Password and Token configure POST /auth/login.
	Email    string
	Password string
	Token    string

	// BeforeHandle, when set, runs for every request after it is recorded.
	BeforeHandle func(r *http.Request)
}

// New starts a fake backend with empty collections.
func New() (s *Server) {
	s = &Server{
		collections: make(map[string][]map[string]interface{}),
		singles:     make(map[string]interface{}),
		failures:    make(map[string]int),
	}

	r := chi.NewRouter()
	r.Use(s.record)

	r.Post("/auth/login", s.handleLogin)
	r.Get("/{resource}", s.handleRead)
	r.Post("/admin/{resource}", s.handleCreate)
	r.Put("/admin/{resource}/{id}", s.handleUpdate)
	r.Delete("/admin/{resource}/{id}", s.handleDelete)

	s.Server = httptest.NewServer(r)
	return s
}

// SetCollection replaces a list resource. items is marshalled through JSON,
// so typed slices from the models package are accepted.
func (s *Server) SetCollection(resource string, items interface{}) {
	data, err := json.Marshal(items)
	if err != nil {
		panic(err)
	}

	var decoded []map[string]interface{}
	err = json.Unmarshal(data, &decoded)
	if err != nil {
		panic(err)
	}
	if decoded == nil {
		decoded = []map[string]interface{}{}
	}

	s.mu.Lock()
	s.collections[resource] = decoded
	s.mu.Unlock()
}

// SetSingle serves value as the data of GET /<resource>.
func (s *Server) SetSingle(resource string, value interface{}) {
	s.mu.Lock()
	s.singles[resource] = value
	s.mu.Unlock()
}

// Fail makes every request matching method and path answer with status.
func (s *Server) Fail(method, path string, status int) {
	s.mu.Lock()
	s.failures[method+" "+path] = status
	s.mu.Unlock()
}

// Requests returns a copy of the recorded requests.
func (s *Server) Requests() (requests []Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	requests = append([]Request(nil), s.requests...)
	return requests
}

// Count returns how many recorded requests match method and path.
func (s *Server) Count(method, path string) (count int) {
	for _, req := range s.Requests() {
		if req.Method == method && req.Path == path {
			count++
		}
	}
	return count
}

// Reset clears the recorded requests.
func (s *Server) Reset() {
	s.mu.Lock()
	s.requests = nil
	s.mu.Unlock()
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			Body:          body,
		})
		status, fail := s.failures[r.Method+" "+r.URL.Path]
		hook := s.BeforeHandle
		s.mu.Unlock()

		if hook != nil {
			hook(r)
		}

		if fail {
			http.Error(w, http.StatusText(status), status)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	err := json.NewDecoder(r.Body).Decode(&creds)
	if err != nil || creds.Email != s.Email || creds.Password != s.Password {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"token": s.Token})
}

func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")

	s.mu.Lock()
	defer s.mu.Unlock()

	if single, ok := s.singles[resource]; ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": single})
		return
	}

	items, ok := s.collections[resource]
	if !ok {
		http.NotFound(w, r)
		return
	}

	if slug := r.URL.Query().Get("slug"); slug != "" {
		for _, item := range items {
			if item["slug"] == slug {
				writeJSON(w, http.StatusOK, map[string]interface{}{"data": item})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": nil})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": items})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")

	var item map[string]interface{}
	err := json.NewDecoder(r.Body).Decode(&item)
	if err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	item["id"] = uuid.NewString()

	s.mu.Lock()
	s.collections[resource] = append(s.collections[resource], item)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	id := chi.URLParam(r, "id")

	var item map[string]interface{}
	err := json.NewDecoder(r.Body).Decode(&item)
	if err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	item["id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.collections[resource]
	for i := range items {
		if items[i]["id"] == id {
			items[i] = item
			writeJSON(w, http.StatusOK, item)
			return
		}
	}

	http.NotFound(w, r)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.collections[resource]
	for i := range items {
		if items[i]["id"] == id {
			s.collections[resource] = append(items[:i], items[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]interface{}{"message": "deleted"})
			return
		}
	}

	http.NotFound(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
