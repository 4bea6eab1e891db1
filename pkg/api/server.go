package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/Kanagaraj46/socialnet/pkg/analysis"
	"github.com/Kanagaraj46/socialnet/pkg/config"
	"github.com/Kanagaraj46/socialnet/pkg/graphql"
	"github.com/Kanagaraj46/socialnet/pkg/logging"
	"github.com/Kanagaraj46/socialnet/pkg/metrics"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Server exposes the analysis engine over HTTP. It holds the most recent
// result so the GraphQL surface can answer queries between uploads; the
// result is replaced wholesale on each successful analysis.
type Server struct {
	cfg      *config.Config
	logger   logging.Logger
	registry *metrics.Registry

	mu      sync.RWMutex
	current *analysis.Result

	gql       http.Handler
	startTime time.Time
}

// NewServer wires the handlers, the GraphQL schema, and the metrics
// registry into a ready-to-serve Server.
func NewServer(cfg *config.Config, logger logging.Logger, registry *metrics.Registry) (*Server, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if registry == nil {
		registry = metrics.DefaultRegistry()
	}

	s := &Server{
		cfg:       cfg,
		logger:    logger.With(logging.Component("api")),
		registry:  registry,
		startTime: time.Now(),
	}

	schema, err := graphql.GenerateSchema(s.CurrentResult)
	if err != nil {
		return nil, err
	}
	s.gql = graphql.NewGraphQLHandler(schema)

	return s, nil
}

// CurrentResult returns the most recent analysis, or nil before the first
// upload. Safe for concurrent use.
func (s *Server) CurrentResult() *analysis.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Server) setCurrent(result *analysis.Result) {
	s.mu.Lock()
	s.current = result
	s.mu.Unlock()
}

// Handler returns the full route table wrapped in the metrics middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/analyze", s.handleAnalyze)
	mux.HandleFunc("/graphql", s.handleGraphQL)
	mux.Handle("/metrics", s.registry.Handler())
	return s.metricsMiddleware(mux)
}
