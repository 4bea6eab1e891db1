package analysis

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Kanagaraj46/socialnet/pkg/algorithms"
	"github.com/Kanagaraj46/socialnet/pkg/config"
	"github.com/Kanagaraj46/socialnet/pkg/graph"
	"github.com/Kanagaraj46/socialnet/pkg/logging"
	"github.com/Kanagaraj46/socialnet/pkg/metrics"
)

// Analyzer runs every analytics module against a graph and assembles the
// label-keyed Result. It holds configuration only; all per-run state lives
// in the Result, so a single Analyzer serves any number of sequential or
// concurrent requests.
type Analyzer struct {
	cfg     config.AnalysisConfig
	logger  logging.Logger
	metrics *metrics.Registry
}

// NewAnalyzer creates an Analyzer. A nil logger disables logging and a nil
// registry disables metrics.
func NewAnalyzer(cfg config.AnalysisConfig, logger logging.Logger, registry *metrics.Registry) *Analyzer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Analyzer{
		cfg:     cfg,
		logger:  logger.With(logging.Component("analyzer")),
		metrics: registry,
	}
}

// Analyze parses adjacency-list lines and runs the full analysis.
func (a *Analyzer) Analyze(ctx context.Context, lines []string) (*Result, error) {
	g, err := graph.BuildGraph(lines)
	if err != nil {
		a.recordAnalysis("parse_error", nil)
		return nil, err
	}
	return a.AnalyzeGraph(ctx, g)
}

// AnalyzeReader parses adjacency-list text from r and runs the full analysis.
func (a *Analyzer) AnalyzeReader(ctx context.Context, r io.Reader) (*Result, error) {
	g, err := graph.ParseAdjacencyList(r)
	if err != nil {
		a.recordAnalysis("parse_error", nil)
		return nil, err
	}
	return a.AnalyzeGraph(ctx, g)
}

// AnalyzeGraph runs the four analytics modules against an already-built
// graph. The graph is immutable, so the modules run concurrently without
// coordination; each writes only its own slot in the pending result.
func (a *Analyzer) AnalyzeGraph(ctx context.Context, g *graph.Graph) (*Result, error) {
	if err := g.Validate(); err != nil {
		a.recordAnalysis("empty", g)
		return nil, err
	}

	timer := logging.StartTimer(a.logger, "analysis complete",
		logging.Nodes(g.NodeCount()), logging.Edges(g.EdgeCount()))

	var (
		community  *algorithms.CommunityResult
		centrality *algorithms.CentralityResult
		recs       [][]algorithms.Recommendation
		clustering *algorithms.ClusteringResult

		centralityErr error
		wg            sync.WaitGroup
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		defer a.timeModule("community")()
		community = algorithms.DetectCommunities(g, algorithms.LouvainOptions{
			MaxPasses: a.cfg.LouvainMaxPasses,
		})
	}()
	go func() {
		defer wg.Done()
		defer a.timeModule("centrality")()
		centrality, centralityErr = algorithms.ComputeAllCentrality(ctx, g, algorithms.CentralityOptions{
			MaxBetweennessNodes: a.cfg.MaxBetweennessNodes,
			TopK:                a.cfg.TopK,
		})
	}()
	go func() {
		defer wg.Done()
		defer a.timeModule("similarity")()
		recs = algorithms.AllRecommendations(g, algorithms.SimilarityOptions{
			Metric: algorithms.SimilarityJaccard,
			TopK:   a.cfg.TopK,
		})
	}()
	go func() {
		defer wg.Done()
		defer a.timeModule("clustering")()
		clustering = algorithms.ComputeClustering(g, algorithms.ClusteringOptions{
			SuspiciousRatio: a.cfg.SuspiciousRatio,
			MaxSuspicious:   a.cfg.MaxSuspicious,
		})
	}()
	wg.Wait()

	if centralityErr != nil {
		timer.EndError(centralityErr)
		a.recordAnalysis("error", g)
		return nil, centralityErr
	}

	result := a.assemble(g, community, centrality, recs, clustering)

	timer.End()
	a.logger.Info("analysis assembled",
		logging.AnalysisID(result.ID),
		logging.Communities(len(result.Communities)),
		logging.Float64("modularity", result.Modularity),
	)
	a.recordAnalysis("success", g)
	return result, nil
}

// assemble translates index-keyed module outputs into the label-keyed
// Result.
func (a *Analyzer) assemble(
	g *graph.Graph,
	community *algorithms.CommunityResult,
	centrality *algorithms.CentralityResult,
	recs [][]algorithms.Recommendation,
	clustering *algorithms.ClusteringResult,
) *Result {
	labels := g.Labels()

	nodes := make([]string, len(labels))
	copy(nodes, labels)

	partition := make(map[string]int, len(labels))
	for i, label := range labels {
		partition[label] = community.NodeCommunity[i]
	}

	communities := make([]CommunitySummary, len(community.Communities))
	for i, com := range community.Communities {
		members := make([]string, len(com.Labels))
		copy(members, com.Labels)
		communities[i] = CommunitySummary{
			ID:      com.ID,
			Size:    com.Size,
			Density: com.Density,
			Members: members,
		}
	}

	recommendations := make(map[string][]Suggestion, len(labels))
	for i, label := range labels {
		suggestions := make([]Suggestion, len(recs[i]))
		for j, r := range recs[i] {
			suggestions[j] = Suggestion{Label: r.Label, Score: r.Score}
		}
		recommendations[label] = suggestions
	}

	result := &Result{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),

		Nodes:     nodes,
		NodeCount: g.NodeCount(),
		EdgeCount: g.EdgeCount(),
		Density:   g.Density(),

		Communities: communities,
		Partition:   partition,
		Modularity:  community.Modularity,

		Degree:      labelScores(labels, centrality.Degree),
		Closeness:   labelScores(labels, centrality.Closeness),
		Betweenness: labelScores(labels, centrality.Betweenness),

		TopByDegree:      rankedLabels(centrality.TopByDegree),
		TopByCloseness:   rankedLabels(centrality.TopByCloseness),
		TopByBetweenness: rankedLabels(centrality.TopByBetweenness),

		Recommendations: recommendations,

		Clustering:    labelScores(labels, clustering.Coefficients),
		AvgClustering: clustering.Average,
		TriangleCount: clustering.TriangleCount,
		Suspicious:    rankedLabels(clustering.Suspicious),
	}

	if avg, err := g.AveragePathLength(); err == nil {
		result.AvgPathLength = avg
		result.Connected = true
	} else if !errors.Is(err, graph.ErrDisconnected) {
		// AveragePathLength only fails on disconnection.
		a.logger.Warn("average path length unavailable", logging.Error(err))
	}

	return result
}

// timeModule returns a closure recording one module's duration.
func (a *Analyzer) timeModule(module string) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		a.logger.Debug("module finished",
			logging.Operation(module), logging.Latency(elapsed))
		if a.metrics != nil {
			a.metrics.RecordModuleDuration(module, elapsed)
		}
	}
}

func (a *Analyzer) recordAnalysis(status string, g *graph.Graph) {
	if a.metrics == nil {
		return
	}
	if status == "parse_error" {
		a.metrics.RecordParseFailure()
	}
	nodes, edges := 0, 0
	if g != nil {
		nodes, edges = g.NodeCount(), g.EdgeCount()
	}
	a.metrics.RecordAnalysis(status, nodes, edges)
}
