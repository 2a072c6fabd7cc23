// pkg/ai/mock_client.go

package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type mockClient struct{}

// NewMock returns a deterministic offline client, used when no backend is
// configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Generate(ctx context.Context, r Request) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch r.Name {
	case FlowFieldPlan:
		return json.Marshal(map[string]string{"plan": mockPlan(r.Prompt)})
	case FlowRecommendations:
		return json.Marshal(map[string]any{"recommendations": mockRecommendations(r.Prompt)})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRequest, r.Name)
	}
}

func mockPlan(prompt string) string {
	steps := []string{"1. Scout the field weekly for pests and disease."}
	lower := strings.ToLower(prompt)
	if strings.Contains(lower, "sand") {
		steps = append(steps, "2. Irrigate in short, frequent cycles; sandy soil drains fast.")
	} else if strings.Contains(lower, "clay") {
		steps = append(steps, "2. Check drainage after heavy rain; clay soil holds water.")
	} else {
		steps = append(steps, "2. Keep irrigation matched to rainfall and crop stage.")
	}
	if strings.Contains(lower, "harvest") {
		steps = append(steps, "3. Plan residue management and a soil test before the next planting.")
	} else {
		steps = append(steps, "3. Side-dress nitrogen according to the latest soil test.")
	}
	return strings.Join(steps, "\n")
}

func mockRecommendations(prompt string) []map[string]string {
	out := []map[string]string{
		{"title": "Scout for pests", "description": "Walk each field and record pest pressure.", "priority": "High"},
	}
	if strings.Contains(strings.ToLower(prompt), "harvest") {
		out = append(out, map[string]string{"title": "Plan cover crops", "description": "Sow a cover crop on harvested fields to protect the soil.", "priority": "Medium"})
	}
	out = append(out, map[string]string{"title": "Review records", "description": "Update field logs with this week's activities.", "priority": "Low"})
	return out
}
