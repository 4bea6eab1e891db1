package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/Kanagaraj46/socialnet/pkg/analysis"
)

// ResultProvider returns the analysis result queries should read from.
// It returns nil when no analysis has been run yet.
type ResultProvider func() *analysis.Result

// GenerateSchema builds the GraphQL schema over analysis results. Every
// resolver reads through the provider so the schema survives across runs.
func GenerateSchema(provider ResultProvider) (graphql.Schema, error) {
	rankedType := createRankedType()
	suggestionType := createSuggestionType()
	nodeType := createNodeType(suggestionType)
	communityType := createCommunityType()
	summaryType := createSummaryType()

	queryFields := graphql.Fields{
		"health": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return "ok", nil
			},
		},
		"summary": &graphql.Field{
			Type: summaryType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return currentResult(provider)
			},
		},
		"node": &graphql.Field{
			Type: nodeType,
			Args: graphql.FieldConfigArgument{
				"label": &graphql.ArgumentConfig{
					Type: graphql.NewNonNull(graphql.String),
				},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				result, err := currentResult(provider)
				if err != nil {
					return nil, err
				}
				label, ok := p.Args["label"].(string)
				if !ok {
					return nil, fmt.Errorf("label argument is required")
				}
				if _, found := result.Degree[label]; !found {
					return nil, nil
				}
				return nodeView(result, label), nil
			},
		},
		"nodes": &graphql.Field{
			Type: graphql.NewList(nodeType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				result, err := currentResult(provider)
				if err != nil {
					return nil, err
				}
				views := make([]map[string]interface{}, 0, len(result.Nodes))
				for _, label := range result.Nodes {
					views = append(views, nodeView(result, label))
				}
				return views, nil
			},
		},
		"communities": &graphql.Field{
			Type: graphql.NewList(communityType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				result, err := currentResult(provider)
				if err != nil {
					return nil, err
				}
				return result.Communities, nil
			},
		},
		"suspicious": &graphql.Field{
			Type: graphql.NewList(rankedType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				result, err := currentResult(provider)
				if err != nil {
					return nil, err
				}
				return result.Suspicious, nil
			},
		},
		"influencers": &graphql.Field{
			Type: graphql.NewList(rankedType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				result, err := currentResult(provider)
				if err != nil {
					return nil, err
				}
				return result.TopByDegree, nil
			},
		},
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: queryFields,
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to create schema: %w", err)
	}

	return schema, nil
}

func currentResult(provider ResultProvider) (*analysis.Result, error) {
	result := provider()
	if result == nil {
		return nil, fmt.Errorf("no analysis available")
	}
	return result, nil
}

// nodeView flattens the per-node slices and maps into one record so field
// resolvers can read it without holding the whole result.
func nodeView(result *analysis.Result, label string) map[string]interface{} {
	suggestions := result.Recommendations[label]
	return map[string]interface{}{
		"label":       label,
		"degree":      result.Degree[label],
		"closeness":   result.Closeness[label],
		"betweenness": result.Betweenness[label],
		"clustering":  result.Clustering[label],
		"community":   result.Partition[label],
		"suggestions": suggestions,
	}
}

func createSummaryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Summary",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return sourceResult(p).ID, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return sourceResult(p).CreatedAt, nil
				},
			},
			"nodeCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return sourceResult(p).NodeCount, nil
				},
			},
			"edgeCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return sourceResult(p).EdgeCount, nil
				},
			},
			"density": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return sourceResult(p).Density, nil
				},
			},
			"avgPathLength": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return sourceResult(p).AvgPathLength, nil
				},
			},
			"connected": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return sourceResult(p).Connected, nil
				},
			},
			"modularity": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return sourceResult(p).Modularity, nil
				},
			},
			"avgClustering": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return sourceResult(p).AvgClustering, nil
				},
			},
			"triangleCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return sourceResult(p).TriangleCount, nil
				},
			},
			"communityCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return len(sourceResult(p).Communities), nil
				},
			},
		},
	})
}

func sourceResult(p graphql.ResolveParams) *analysis.Result {
	if result, ok := p.Source.(*analysis.Result); ok {
		return result
	}
	return &analysis.Result{}
}

func createNodeType(suggestionType *graphql.Object) *graphql.Object {
	field := func(key string, t graphql.Output) *graphql.Field {
		return &graphql.Field{
			Type: t,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if view, ok := p.Source.(map[string]interface{}); ok {
					return view[key], nil
				}
				return nil, nil
			},
		}
	}
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Node",
		Fields: graphql.Fields{
			"label":       field("label", graphql.NewNonNull(graphql.String)),
			"degree":      field("degree", graphql.Float),
			"closeness":   field("closeness", graphql.Float),
			"betweenness": field("betweenness", graphql.Float),
			"clustering":  field("clustering", graphql.Float),
			"community":   field("community", graphql.Int),
			"suggestions": field("suggestions", graphql.NewList(suggestionType)),
		},
	})
}

func createCommunityType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Community",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if com, ok := p.Source.(analysis.CommunitySummary); ok {
						return com.ID, nil
					}
					return nil, nil
				},
			},
			"size": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if com, ok := p.Source.(analysis.CommunitySummary); ok {
						return com.Size, nil
					}
					return nil, nil
				},
			},
			"density": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if com, ok := p.Source.(analysis.CommunitySummary); ok {
						return com.Density, nil
					}
					return nil, nil
				},
			},
			"members": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if com, ok := p.Source.(analysis.CommunitySummary); ok {
						return com.Members, nil
					}
					return nil, nil
				},
			},
		},
	})
}

func createRankedType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "RankedNode",
		Fields: graphql.Fields{
			"label": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if r, ok := p.Source.(analysis.RankedLabel); ok {
						return r.Label, nil
					}
					return nil, nil
				},
			},
			"score": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if r, ok := p.Source.(analysis.RankedLabel); ok {
						return r.Score, nil
					}
					return nil, nil
				},
			},
		},
	})
}

func createSuggestionType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Suggestion",
		Fields: graphql.Fields{
			"label": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if s, ok := p.Source.(analysis.Suggestion); ok {
						return s.Label, nil
					}
					return nil, nil
				},
			},
			"score": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if s, ok := p.Source.(analysis.Suggestion); ok {
						return s.Score, nil
					}
					return nil, nil
				},
			},
		},
	})
}
