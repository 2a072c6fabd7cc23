package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"agrovision/entities"
	"agrovision/pkg/ai/flows"
)

var errNoFlows = errors.New("no generative backend configured")

// Recommendations returns the manual set followed by the latest AI set.
func (s *Store) Recommendations() []entities.Recommendation {
	var out []entities.Recommendation
	s.read(func(st *state) { out = slices.Clone(st.recommendations) })
	return out
}

// GenerateAIRecommendations asks the recommendations flow about every field
// and replaces the AI portion of the collection. On failure the collection
// is left as it was.
func (s *Store) GenerateAIRecommendations(ctx context.Context) error {
	defer s.beginLoading(&s.recsInFlight)()

	in := flows.RecommendationsInput{FieldData: []flows.FieldSummary{}, CurrentDate: s.today()}
	s.read(func(st *state) {
		for _, f := range st.fields {
			in.FieldData = append(in.FieldData, flows.FieldSummary{
				Name:     f.Name,
				Crop:     f.CropType,
				Area:     f.Area,
				SoilType: f.SoilType,
				Status:   f.Status,
			})
		}
	})

	if s.flows == nil {
		return s.aiFailed("recommendations", "Could not generate AI recommendations.", errNoFlows)
	}
	out, err := s.flows.GetRecommendations(ctx, in)
	if err != nil {
		return s.aiFailed("recommendations", "Could not generate AI recommendations.", err)
	}

	generated := make([]entities.Recommendation, 0, len(out.Recommendations))
	for _, r := range out.Recommendations {
		generated = append(generated, entities.Recommendation{
			Title:       r.Title,
			Description: r.Description,
			Priority:    entities.Priority(r.Priority),
			Source:      entities.SourceAI,
		})
	}
	_ = s.update(func(st *state) error {
		st.replaceRecommendations(s.manual, generated)
		return nil
	})

	s.log.Info("ai recommendations replaced", "count", len(generated), "fields", len(in.FieldData))
	s.publish(EventRecommendationsReplaced, "")
	s.toast("AI recommendations generated", "New recommendations are ready to review.")
	return nil
}

// GenerateAIFieldPlan asks the plan flow about one field and stores the
// result on it.
func (s *Store) GenerateAIFieldPlan(ctx context.Context, fieldID string) error {
	f, ok := s.GetFieldByID(fieldID)
	if !ok {
		s.toastError("Field not found.")
		return fmt.Errorf("%w: %s", ErrFieldNotFound, fieldID)
	}

	defer s.beginLoading(&s.planInFlight)()

	if s.flows == nil {
		return s.aiFailed("field plan", "Could not generate the AI activity plan.", errNoFlows)
	}
	out, err := s.flows.GenerateFieldPlan(ctx, flows.FieldPlanInput{
		FieldName:   f.Name,
		CropType:    f.CropType,
		Area:        f.Area,
		SoilType:    f.SoilType,
		Status:      f.Status,
		CurrentDate: s.today(),
	})
	if err != nil {
		return s.aiFailed("field plan", "Could not generate the AI activity plan.", err)
	}

	plan := out.Plan
	if _, applied, err := s.UpdateField(fieldID, entities.FieldPatch{AIActivityPlan: &plan}); err != nil {
		return err
	} else if !applied {
		s.log.Warn("field removed while plan was generating", "id", fieldID)
		return fmt.Errorf("%w: %s", ErrFieldNotFound, fieldID)
	}

	s.log.Info("ai field plan stored", "id", fieldID, "chars", len(plan))
	s.toast("AI plan generated", fmt.Sprintf("An activity plan for %s is ready.", f.Name))
	return nil
}

func (s *Store) aiFailed(op, message string, err error) error {
	s.log.Error("ai generation failed", "op", op, "error", err)
	s.toastError(message)
	return fmt.Errorf("%w: %s: %w", ErrAIUnavailable, op, err)
}
