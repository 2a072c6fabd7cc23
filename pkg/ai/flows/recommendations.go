package flows

import (
	"context"
	"text/template"

	"agrovision/pkg/ai"
)

// FieldSummary is the per-field shape sent to the recommendations flow.
type FieldSummary struct {
	Name     string  `json:"name" validate:"required"`
	Crop     string  `json:"crop" validate:"required"`
	Area     float64 `json:"area" validate:"gt=0"`
	SoilType string  `json:"soilType" validate:"required"`
	Status   string  `json:"status" validate:"required"`
}

type RecommendationsInput struct {
	FieldData   []FieldSummary `json:"fieldData" validate:"dive"`
	CurrentDate string         `json:"currentDate" validate:"required,datetime=2006-01-02"`
}

type RecommendationItem struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority" validate:"required,oneof=High Medium Low"`
}

type RecommendationsOutput struct {
	Recommendations []RecommendationItem `json:"recommendations" validate:"required,dive"`
}

var recommendationsPrompt = template.Must(template.New(ai.FlowRecommendations).Parse(`You are an expert agronomist advising a farmer from their field data and the current date.

Current Date: {{.CurrentDate}}

Field Data:
{{- range .FieldData}}
  Field Name: {{.Name}}
  Crop: {{.Crop}}
  Area: {{.Area}} acres
  Soil Type: {{.SoilType}}
  Status: {{.Status}}
{{- else}}
  (no fields recorded)
{{- end}}

Produce a list of actionable agronomic recommendations. Each one needs a title, a detailed description and a priority of High, Medium or Low.
Consider crop needs for the current date and growth stage, risks from soil type and field status, and general agronomic best practice.
Be very concise.
`))

var recommendationsSchema = ai.Object("Agronomic recommendations.",
	ai.Prop("recommendations", ai.Array("An array of agronomic recommendation objects.",
		ai.Object("One recommendation.",
			ai.Prop("title", ai.String("A short title for the recommendation.")),
			ai.Prop("description", ai.String("A detailed description of the recommendation.")),
			ai.Prop("priority", ai.Enum("The priority of the recommendation.", "High", "Medium", "Low")),
		),
	)),
)

// GetRecommendations asks the model for farm-wide recommendations.
func (r *Runner) GetRecommendations(ctx context.Context, in RecommendationsInput) (RecommendationsOutput, error) {
	return run[RecommendationsInput, RecommendationsOutput](ctx, r.client, ai.FlowRecommendations, recommendationsPrompt, recommendationsSchema, in)
}
