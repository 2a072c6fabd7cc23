// pkg/ai/client.go

package ai

import "context"

// Request is one structured-output call: a rendered prompt plus the schema the
// reply must conform to. Name identifies the flow and doubles as schema name.
type Request struct {
	Name   string
	System string
	Prompt string
	Schema *Schema
}

// Client sends a request to a generative text backend and returns the raw JSON
// text of the reply.
type Client interface {
	Generate(ctx context.Context, req Request) ([]byte, error)
}

// Request names of the two dashboard flows.
const (
	FlowFieldPlan       = "field_activity_plan"
	FlowRecommendations = "agronomic_recommendations"
)
