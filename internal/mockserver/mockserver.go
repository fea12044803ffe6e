// Package mockserver is a local stand-in for the remote query service, used
// for development, demos, and end-to-end tests.
package mockserver

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Fixture maps a question substring to a canned response.
type Fixture struct {
	Match   string           `yaml:"match"`
	SQL     string           `yaml:"sql"`
	Results []map[string]any `yaml:"results"`
}

type fixtureFile struct {
	Fixtures []Fixture `yaml:"fixtures"`
}

// Server serves the query service contract from canned fixtures.
type Server struct {
	fixtures []Fixture
	router   chi.Router
}

// New creates a mock server over the given fixtures.
func New(fixtures []Fixture) *Server {
	s := &Server{fixtures: fixtures}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/schema", s.handleSchema)
	r.Post("/query", s.handleQuery)

	s.router = r
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// LoadFixtures reads a YAML fixture file.
func LoadFixtures(path string) ([]Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "mockserver: read fixtures")
	}

	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, eris.Wrap(err, "mockserver: parse fixtures")
	}
	return file.Fixtures, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "healthy",
		"database":    "connected",
		"version":     "0.1.0",
		"environment": "mock",
		"timestamp":   now(),
	})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	tables := map[string]any{}
	total := 0
	for _, f := range s.fixtures {
		tables[tableName(f.Match)] = map[string]any{
			"count":         len(f.Results),
			"columns":       fixtureColumns(f),
			"geometry_type": "GEOMETRY",
			"description":   "mock fixture: " + f.Match,
		}
		total += len(f.Results)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"tables":        tables,
		"total_records": total,
		"timestamp":     now(),
	})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		writeError(w, http.StatusBadRequest, "Question cannot be empty")
		return
	}

	// A "fail:" prefix exercises the client's failure path end to end.
	if rest, ok := strings.CutPrefix(question, "fail:"); ok {
		writeError(w, http.StatusBadRequest, strings.TrimSpace(rest))
		return
	}

	results := []map[string]any{}
	sql := "SELECT id, geojson FROM features WHERE false"
	lower := strings.ToLower(question)
	for _, f := range s.fixtures {
		if strings.Contains(lower, strings.ToLower(f.Match)) {
			results = f.Results
			sql = f.SQL
			break
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sql":            sql,
		"results":        results,
		"result_count":   len(results),
		"execution_time": float64(time.Since(started).Microseconds()) / 1000,
		"timestamp":      now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"error":     http.StatusText(status),
		"message":   message,
		"timestamp": now(),
	})
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func tableName(match string) string {
	return strings.ReplaceAll(strings.ToLower(match), " ", "_")
}

func fixtureColumns(f Fixture) []string {
	seen := map[string]bool{}
	var cols []string
	for _, row := range f.Results {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	return cols
}
