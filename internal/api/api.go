// Package api exposes the solver core over HTTP: POST /solve parses
// and solves a board in one request, GET /healthz reports liveness.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JiCorrales/traffic-jam-solver/internal/cache"
	"github.com/JiCorrales/traffic-jam-solver/internal/puzzle"
	"github.com/JiCorrales/traffic-jam-solver/internal/solver"
	"github.com/JiCorrales/traffic-jam-solver/internal/telemetry"
)

// apiError is always the JSON body of a non-2xx response, written by
// writeError: callers always get a typed, decodable failure (like
// puzzle.Error's Kind) rather than a bare status code.
type apiError struct {
	Status  int    `json:"status"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Server wires the solver core to Gin handlers, with an optional
// result cache and metrics collectors.
type Server struct {
	Cache      *cache.Cache // optional; nil disables caching
	Collectors *telemetry.Collectors // optional; nil disables metrics
}

// Router builds the Gin engine for the service.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", s.handleHealthz)
	r.POST("/solve", s.handleSolve)
	return r
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// solveRequest is the POST /solve body: raw puzzle text and the
// algorithm to run.
type solveRequest struct {
	Board     string `json:"board" binding:"required"`
	Algorithm string `json:"algorithm"`
	MaxDepth  int    `json:"maxDepth"`
}

// solveResponse embeds the solver Result with a per-request id, the
// way the teacher's sessions are tagged with a generated session id.
type solveResponse struct {
	RequestID string        `json:"requestId"`
	Result    solver.Result `json:"result"`
}

func (s *Server) handleSolve(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	board, err := puzzle.Parse(req.Board)
	if err != nil {
		writeError(c, http.StatusBadRequest, "parse_error", err.Error())
		return
	}

	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = "bfs"
	}

	opts := solver.Options{MaxDepth: req.MaxDepth}
	if s.Collectors != nil {
		sink := telemetry.NewSink(s.Collectors, algorithm)
		opts.Progress = sink.Observe
	}

	boardKey := board.InitialKey()
	if s.Cache != nil {
		if cached, ok, _ := s.Cache.Get(algorithm, boardKey); ok {
			c.JSON(http.StatusOK, solveResponse{RequestID: uuid.NewString(), Result: cached.Result})
			return
		}
	}

	result, err := solver.Run(algorithm, board, opts)
	if err != nil {
		writeError(c, http.StatusBadRequest, "unknown_algorithm", err.Error())
		return
	}

	if s.Cache != nil {
		_ = s.Cache.Put(algorithm, boardKey, result, 0)
	}

	c.JSON(http.StatusOK, solveResponse{RequestID: uuid.NewString(), Result: result})
}

func writeError(c *gin.Context, status int, kind, message string) {
	c.JSON(status, apiError{Status: status, Kind: kind, Message: message})
}
