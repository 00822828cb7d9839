package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rodriguescarson/cfkit/internal/cfapi"
	"github.com/rodriguescarson/cfkit/internal/remind"
	"github.com/rodriguescarson/cfkit/internal/stats"
)

// API is the slice of the Codeforces client the server needs; narrow so
// tests can stub it.
type API interface {
	UserInfo(ctx context.Context, handles []string) ([]cfapi.User, error)
	UserStatus(ctx context.Context, handle string, from, count int) ([]cfapi.Submission, error)
	UserRating(ctx context.Context, handle string) ([]cfapi.RatingChange, error)
	ContestList(ctx context.Context, gym bool) ([]cfapi.Contest, error)
}

// Server exposes the toolkit's read-only JSON API.
type Server struct {
	api    API
	logger *zap.Logger
}

func New(api API, logger *zap.Logger) *Server {
	return &Server{api: api, logger: logger}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests, allowAllOrigins)

	r.Methods(http.MethodGet).Path("/api/health").HandlerFunc(s.handleHealth)
	r.Methods(http.MethodGet).Path("/api/user/{handle}").HandlerFunc(s.handleUser)
	r.Methods(http.MethodGet).Path("/api/user").HandlerFunc(s.handleUser)
	r.Methods(http.MethodGet).Path("/api/stats").HandlerFunc(s.handleStats)
	r.Methods(http.MethodGet).Path("/api/contests").HandlerFunc(s.handleContests)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)))
	})
}

func allowAllOrigins(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "success"})
}

// requestHandle resolves the handle from the path variable or the query
// string, matching both /api/user/{handle} and /api/user?handle= forms.
func requestHandle(r *http.Request) string {
	if h := mux.Vars(r)["handle"]; h != "" {
		return h
	}
	return r.URL.Query().Get("handle")
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	handle := requestHandle(r)
	if handle == "" {
		writeError(w, http.StatusBadRequest, "handle parameter required")
		return
	}

	users, err := s.api.UserInfo(r.Context(), []string{handle})
	if err != nil {
		s.apiFailure(w, "user.info", err)
		return
	}
	if len(users) == 0 {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"user":   users[0],
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	handle := requestHandle(r)
	if handle == "" {
		writeError(w, http.StatusBadRequest, "handle parameter required")
		return
	}

	users, err := s.api.UserInfo(r.Context(), []string{handle})
	if err != nil {
		s.apiFailure(w, "user.info", err)
		return
	}
	if len(users) == 0 {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	subs, err := s.api.UserStatus(r.Context(), handle, 1, 1000)
	if err != nil {
		s.apiFailure(w, "user.status", err)
		return
	}
	history, err := s.api.UserRating(r.Context(), handle)
	if err != nil {
		s.apiFailure(w, "user.rating", err)
		return
	}

	summary := stats.Summarize(users[0], subs, history)
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"user":   summary.User,
		"stats": map[string]any{
			"solvedCount":       summary.SolvedCount,
			"recentSubmissions": len(subs),
			"ratingChanges":     len(history),
		},
		"ratingHistory":     summary.RatingHistory,
		"recentSubmissions": summary.Recent,
	})
}

func (s *Server) handleContests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := remind.DefaultFilter
	if f := q.Get("filter"); f != "" {
		filter = splitFilter(f)
	}
	includeGym := q.Get("include_gym") == "true"

	contests, err := s.api.ContestList(r.Context(), includeGym)
	if err != nil {
		s.apiFailure(w, "contest.list", err)
		return
	}

	upcoming := remind.Upcoming(contests, time.Now(), filter, includeGym)
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"contests": upcoming,
		"count":    len(upcoming),
	})
}

func splitFilter(f string) []string {
	if strings.EqualFold(f, "all") {
		return nil
	}
	var out []string
	for _, part := range strings.Split(f, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (s *Server) apiFailure(w http.ResponseWriter, method string, err error) {
	s.logger.Error("upstream API call failed", zap.String("method", method), zap.Error(err))
	writeError(w, http.StatusBadGateway, err.Error())
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{
		"status":  "error",
		"message": msg,
	})
}
