package flows

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/PuerkitoBio/goquery"

	"agrovision/pkg/ai"
)

type FieldPlanInput struct {
	FieldName   string  `json:"fieldName" validate:"required"`
	CropType    string  `json:"cropType" validate:"required"`
	Area        float64 `json:"area" validate:"gt=0"` // acres
	SoilType    string  `json:"soilType" validate:"required"`
	Status      string  `json:"status" validate:"required"`
	CurrentDate string  `json:"currentDate" validate:"required,datetime=2006-01-02"`
}

type FieldPlanOutput struct {
	Plan string `json:"plan" validate:"required"`
}

var fieldPlanPrompt = template.Must(template.New(ai.FlowFieldPlan).Parse(`You are an expert agronomy advisor.
Write an agronomic plan of actionable steps for the field below, taking the current date and all field data into account.
Follow best practice for this crop and soil type. Be concise.

Field Name: {{.FieldName}}
Crop Type: {{.CropType}}
Area: {{.Area}} acres
Soil Type: {{.SoilType}}
Status: {{.Status}}
Current Date: {{.CurrentDate}}
`))

var fieldPlanSchema = ai.Object("A field activity plan.",
	ai.Prop("plan", ai.String("A detailed agronomic plan with actionable steps for the field.")),
)

// GenerateFieldPlan asks the model for a free-text plan for one field.
func (r *Runner) GenerateFieldPlan(ctx context.Context, in FieldPlanInput) (FieldPlanOutput, error) {
	out, err := run[FieldPlanInput, FieldPlanOutput](ctx, r.client, ai.FlowFieldPlan, fieldPlanPrompt, fieldPlanSchema, in)
	if err != nil {
		return FieldPlanOutput{}, err
	}
	out.Plan = cleanPlan(out.Plan)
	if out.Plan == "" {
		return FieldPlanOutput{}, fmt.Errorf("%w: %s: plan is empty after cleanup", ErrInvalidOutput, ai.FlowFieldPlan)
	}
	return out, nil
}

// htmlTag only recognises markup a model plausibly emits, so plain-text
// tokens such as <bushel/acre> survive.
var htmlTag = regexp.MustCompile(`(?i)</?(p|br|hr|ul|ol|li|h[1-6]|div|span|strong|em|b|i|u|code|pre|table|thead|tbody|tr|td|th|blockquote)\b[^>]*>`)

// cleanPlan strips markdown fences and any HTML markup the model emitted,
// keeping line structure.
func cleanPlan(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```markdown")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	if !htmlTag.MatchString(s) {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		li.PrependHtml("- ")
		li.AppendHtml("\n")
	})
	doc.Find("p, h1, h2, h3, h4, h5, h6, ul, ol").Each(func(_ int, blk *goquery.Selection) {
		blk.AppendHtml("\n")
	})

	lines := strings.Split(doc.Text(), "\n")
	kept := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}
