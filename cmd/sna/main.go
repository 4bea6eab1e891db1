package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Kanagaraj46/socialnet/pkg/analysis"
	"github.com/Kanagaraj46/socialnet/pkg/config"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

func main() {
	topK := flag.Int("top", 5, "How many top nodes to show per ranking")
	ratio := flag.Float64("ratio", 0.1, "Suspicious-account clustering ratio (0 disables)")
	asJSON := flag.Bool("json", false, "Print the raw result as JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sna [flags] <adjacency-list-file>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	cfg := config.Default().Analysis
	cfg.TopK = *topK
	cfg.SuspiciousRatio = *ratio

	analyzer := analysis.NewAnalyzer(cfg, nil, nil)
	result, err := analyzer.AnalyzeReader(context.Background(), file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analysis failed: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printReport(result)
}

func printReport(r *analysis.Result) {
	fmt.Println(titleStyle.Render("Social Network Analysis"))
	fmt.Println(boxStyle.Render(summaryLines(r)))

	fmt.Println(titleStyle.Render("Top Influencers"))
	printRanking("by degree", r.TopByDegree)
	printRanking("by closeness", r.TopByCloseness)
	printRanking("by betweenness", r.TopByBetweenness)

	fmt.Println(titleStyle.Render(fmt.Sprintf("Communities (%d)", len(r.Communities))))
	for _, com := range r.Communities {
		members := strings.Join(com.Members, ", ")
		if com.Size > 10 {
			members = strings.Join(com.Members[:10], ", ") + dimStyle.Render(fmt.Sprintf(" and %d more", com.Size-10))
		}
		fmt.Printf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("#%d (%d nodes, density %.2f):", com.ID, com.Size, com.Density)),
			members,
		)
	}
	fmt.Printf("  %s\n", dimStyle.Render(fmt.Sprintf("modularity %.4f", r.Modularity)))

	if sample := sampleUser(r); sample != "" {
		fmt.Println(titleStyle.Render(fmt.Sprintf("Suggested Connections for %s", sample)))
		if recs := r.Recommendations[sample]; len(recs) > 0 {
			for _, rec := range recs {
				fmt.Printf("  %s %s\n", labelStyle.Render(rec.Label), dimStyle.Render(fmt.Sprintf("(similarity %.2f)", rec.Score)))
			}
		} else {
			fmt.Println(dimStyle.Render("  none"))
		}
	}

	fmt.Println(titleStyle.Render("Possible Fake Accounts"))
	if len(r.Suspicious) == 0 {
		fmt.Println(dimStyle.Render("  none detected"))
	} else {
		for _, s := range r.Suspicious {
			fmt.Printf("  %s %s\n", warnStyle.Render(s.Label), dimStyle.Render(fmt.Sprintf("(clustering %.3f)", s.Score)))
		}
	}
}

func summaryLines(r *analysis.Result) string {
	lines := []string{
		fmt.Sprintf("Nodes: %d   Edges: %d   Density: %.4f", r.NodeCount, r.EdgeCount, r.Density),
		fmt.Sprintf("Triangles: %d   Avg clustering: %.4f", r.TriangleCount, r.AvgClustering),
	}
	if r.Connected {
		lines = append(lines, fmt.Sprintf("Avg path length: %.4f", r.AvgPathLength))
	} else {
		lines = append(lines, warnStyle.Render("Graph is not connected"))
	}
	return strings.Join(lines, "\n")
}

// sampleUser picks the highest-degree node, matching what a first-time
// reader of the report is most likely to ask about.
func sampleUser(r *analysis.Result) string {
	if len(r.TopByDegree) == 0 {
		return ""
	}
	return r.TopByDegree[0].Label
}

func printRanking(name string, ranked []analysis.RankedLabel) {
	parts := make([]string, 0, len(ranked))
	for _, rn := range ranked {
		parts = append(parts, fmt.Sprintf("%s %.3f", labelStyle.Render(rn.Label), rn.Score))
	}
	fmt.Printf("  %s %s\n", dimStyle.Render(name+":"), strings.Join(parts, "  "))
}
