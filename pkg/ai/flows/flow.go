// Package flows shapes free-text model output into the two structured
// replies the dashboard uses: a per-field activity plan and a ranked list of
// agronomic recommendations.
package flows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"agrovision/pkg/ai"
	"agrovision/pkg/validation"
)

var (
	// ErrInvalidInput is returned before any model call when the input does
	// not satisfy the flow's schema.
	ErrInvalidInput = errors.New("flows: invalid input")
	// ErrInvalidOutput is returned when the model reply does not satisfy the
	// flow's output schema.
	ErrInvalidOutput = errors.New("flows: invalid output")
)

const systemPrompt = "You are an expert agronomy advisor. Reply only with JSON that matches the requested schema."

// Runner executes both flows against one ai.Client.
type Runner struct {
	client ai.Client
}

func New(c ai.Client) *Runner { return &Runner{client: c} }

func run[In, Out any](ctx context.Context, c ai.Client, name string, tmpl *template.Template, schema *ai.Schema, in In) (Out, error) {
	var out Out
	if err := validation.Struct(in); err != nil {
		return out, fmt.Errorf("%w: %s: %v", ErrInvalidInput, name, err)
	}

	var prompt strings.Builder
	if err := tmpl.Execute(&prompt, in); err != nil {
		return out, fmt.Errorf("render %s prompt: %w", name, err)
	}

	raw, err := c.Generate(ctx, ai.Request{
		Name:   name,
		System: systemPrompt,
		Prompt: prompt.String(),
		Schema: schema,
	})
	if err != nil {
		return out, fmt.Errorf("%s: %w", name, err)
	}

	body := ai.ExtractJSON(string(raw))
	if body == "" {
		return out, fmt.Errorf("%w: %s: no JSON object in reply", ErrInvalidOutput, name)
	}
	dec := json.NewDecoder(strings.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("%w: %s: %v", ErrInvalidOutput, name, err)
	}
	if err := validation.Struct(out); err != nil {
		return out, fmt.Errorf("%w: %s: %v", ErrInvalidOutput, name, err)
	}
	return out, nil
}
