package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrovision/entities"
	"agrovision/pkg/ai/flows"
	"agrovision/pkg/notify"
	"agrovision/pkg/seed"
)

func recsReturning(items ...flows.RecommendationItem) func(context.Context, flows.RecommendationsInput) (flows.RecommendationsOutput, error) {
	return func(context.Context, flows.RecommendationsInput) (flows.RecommendationsOutput, error) {
		return flows.RecommendationsOutput{Recommendations: items}, nil
	}
}

func TestGenerateAIRecommendations(t *testing.T) {
	ff := &fakeFlows{recs: recsReturning(
		flows.RecommendationItem{Title: "Side-dress nitrogen", Description: "North Paddock corn is at V6.", Priority: "High"},
	)}
	s, rec := newTestStore(t, WithFlows(ff))
	events := recordEvents(t, s)

	require.NoError(t, s.GenerateAIRecommendations(context.Background()))

	got := s.Recommendations()
	manual := seed.DefaultManualRecommendations()
	require.Len(t, got, len(manual)+1)
	assert.Equal(t, manual, got[:len(manual)])
	assert.Equal(t, entities.Recommendation{
		Title:       "Side-dress nitrogen",
		Description: "North Paddock corn is at V6.",
		Priority:    entities.PriorityHigh,
		Source:      entities.SourceAI,
	}, got[len(manual)])

	require.Len(t, ff.recsCalls, 1)
	in := ff.recsCalls[0]
	assert.Equal(t, "2024-07-01", in.CurrentDate)
	require.Len(t, in.FieldData, 3)
	assert.Equal(t, flows.FieldSummary{Name: "North Paddock", Crop: "Corn", Area: 120, SoilType: "Loamy Sand", Status: "Growing"}, in.FieldData[0])

	toast, _ := rec.Last()
	assert.Equal(t, "AI recommendations generated", toast.Title)
	assert.Equal(t, []EventKind{EventLoadingChanged, EventRecommendationsReplaced, EventLoadingChanged}, kinds(events()))
	assert.False(t, s.Loading().Recommendations)
}

func TestGenerateAIRecommendationsReplacesPreviousAISet(t *testing.T) {
	ff := &fakeFlows{recs: recsReturning(
		flows.RecommendationItem{Title: "a", Description: "a", Priority: "Low"},
		flows.RecommendationItem{Title: "b", Description: "b", Priority: "Medium"},
	)}
	s, _ := newTestStore(t, WithFlows(ff))
	require.NoError(t, s.GenerateAIRecommendations(context.Background()))

	ff.recs = recsReturning(flows.RecommendationItem{Title: "c", Description: "c", Priority: "High"})
	require.NoError(t, s.GenerateAIRecommendations(context.Background()))

	got := s.Recommendations()
	require.Len(t, got, 4)
	assert.Equal(t, seed.DefaultManualRecommendations(), got[:3])
	assert.Equal(t, "c", got[3].Title)
}

func TestGenerateAIRecommendationsFailureKeepsState(t *testing.T) {
	boom := errors.New("upstream 503")
	ff := &fakeFlows{recs: func(context.Context, flows.RecommendationsInput) (flows.RecommendationsOutput, error) {
		return flows.RecommendationsOutput{}, boom
	}}
	s, rec := newTestStore(t, WithFlows(ff))
	before := s.Recommendations()

	err := s.GenerateAIRecommendations(context.Background())
	assert.ErrorIs(t, err, ErrAIUnavailable)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, before, s.Recommendations())
	assert.False(t, s.Loading().Recommendations)

	toast, _ := rec.Last()
	assert.Equal(t, notify.VariantDestructive, toast.Variant)
}

func TestGenerateWithoutFlows(t *testing.T) {
	s, _ := newTestStore(t)

	assert.ErrorIs(t, s.GenerateAIRecommendations(context.Background()), ErrAIUnavailable)
	assert.ErrorIs(t, s.GenerateAIFieldPlan(context.Background(), "1"), ErrAIUnavailable)
	assert.Equal(t, LoadingState{}, s.Loading())
}

func TestGenerateAIFieldPlan(t *testing.T) {
	ff := &fakeFlows{plan: func(_ context.Context, in flows.FieldPlanInput) (flows.FieldPlanOutput, error) {
		return flows.FieldPlanOutput{Plan: "- Irrigate " + in.FieldName}, nil
	}}
	s, rec := newTestStore(t, WithFlows(ff))

	require.NoError(t, s.GenerateAIFieldPlan(context.Background(), "2"))

	f, _ := s.GetFieldByID("2")
	assert.Equal(t, "- Irrigate Sunset Valley", f.AIActivityPlan)
	require.Len(t, ff.planCalls, 1)
	assert.Equal(t, flows.FieldPlanInput{
		FieldName:   "Sunset Valley",
		CropType:    "Soybeans",
		Area:        250,
		SoilType:    "Clay Loam",
		Status:      "Planted",
		CurrentDate: "2024-07-01",
	}, ff.planCalls[0])

	toasts := rec.Toasts()
	require.Len(t, toasts, 2)
	assert.Equal(t, "Field updated", toasts[0].Title)
	assert.Equal(t, "AI plan generated", toasts[1].Title)
	assert.False(t, s.Loading().FieldPlan)
}

func TestGenerateAIFieldPlanUnknownField(t *testing.T) {
	ff := &fakeFlows{}
	s, rec := newTestStore(t, WithFlows(ff))
	events := recordEvents(t, s)

	err := s.GenerateAIFieldPlan(context.Background(), "404")
	assert.ErrorIs(t, err, ErrFieldNotFound)
	assert.Empty(t, ff.planCalls)
	assert.Empty(t, events())

	toast, _ := rec.Last()
	assert.Equal(t, "Field not found.", toast.Description)
}

func TestGenerateAIFieldPlanFailure(t *testing.T) {
	ff := &fakeFlows{plan: func(context.Context, flows.FieldPlanInput) (flows.FieldPlanOutput, error) {
		return flows.FieldPlanOutput{}, flows.ErrInvalidOutput
	}}
	s, _ := newTestStore(t, WithFlows(ff))

	err := s.GenerateAIFieldPlan(context.Background(), "1")
	assert.ErrorIs(t, err, ErrAIUnavailable)
	assert.ErrorIs(t, err, flows.ErrInvalidOutput)

	f, _ := s.GetFieldByID("1")
	assert.Empty(t, f.AIActivityPlan)
}

func TestGenerateAIFieldPlanFieldDeletedMeanwhile(t *testing.T) {
	var s *Store
	ff := &fakeFlows{plan: func(context.Context, flows.FieldPlanInput) (flows.FieldPlanOutput, error) {
		s.DeleteField("3")
		return flows.FieldPlanOutput{Plan: "late"}, nil
	}}
	s, rec := newTestStore(t, WithFlows(ff))

	err := s.GenerateAIFieldPlan(context.Background(), "3")
	assert.ErrorIs(t, err, ErrFieldNotFound)
	for _, toast := range rec.Toasts() {
		assert.NotEqual(t, "AI plan generated", toast.Title)
	}
}

func TestLoadingFlagsAreIndependent(t *testing.T) {
	recsStarted, releaseRecs := make(chan struct{}), make(chan struct{})
	ff := &fakeFlows{
		recs: func(context.Context, flows.RecommendationsInput) (flows.RecommendationsOutput, error) {
			close(recsStarted)
			<-releaseRecs
			return flows.RecommendationsOutput{Recommendations: []flows.RecommendationItem{}}, nil
		},
	}
	planStarted, releasePlan := make(chan struct{}), make(chan struct{})
	ff.plan = func(context.Context, flows.FieldPlanInput) (flows.FieldPlanOutput, error) {
		close(planStarted)
		<-releasePlan
		return flows.FieldPlanOutput{Plan: "p"}, nil
	}
	s, _ := newTestStore(t, WithFlows(ff))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, s.GenerateAIRecommendations(context.Background()))
	}()
	<-recsStarted
	assert.Equal(t, LoadingState{Recommendations: true}, s.Loading())

	go func() {
		defer wg.Done()
		assert.NoError(t, s.GenerateAIFieldPlan(context.Background(), "1"))
	}()
	<-planStarted
	assert.Equal(t, LoadingState{Recommendations: true, FieldPlan: true}, s.Loading())

	// the store stays readable and writable while both calls are out
	_, err := s.AddField(entities.NewField{Name: "x", CropType: "Rye", Area: 2, SoilType: "Loam", Status: "Planted"})
	require.NoError(t, err)

	close(releaseRecs)
	assert.Eventually(t, func() bool { return !s.Loading().Recommendations }, time.Second, time.Millisecond)
	assert.True(t, s.Loading().FieldPlan)

	close(releasePlan)
	wg.Wait()
	assert.Equal(t, LoadingState{}, s.Loading())
}

func TestOverlappingRecommendationsKeepLoading(t *testing.T) {
	started := make(chan struct{}, 2)
	release := []chan struct{}{make(chan struct{}), make(chan struct{})}
	var (
		mu    sync.Mutex
		calls int
	)
	ff := &fakeFlows{
		recs: func(context.Context, flows.RecommendationsInput) (flows.RecommendationsOutput, error) {
			mu.Lock()
			gate := release[calls]
			calls++
			mu.Unlock()
			started <- struct{}{}
			<-gate
			return flows.RecommendationsOutput{Recommendations: []flows.RecommendationItem{}}, nil
		},
	}
	s, _ := newTestStore(t, WithFlows(ff))
	events := recordEvents(t, s)

	done := []chan struct{}{make(chan struct{}), make(chan struct{})}
	for i := range done {
		go func() {
			defer close(done[i])
			assert.NoError(t, s.GenerateAIRecommendations(context.Background()))
		}()
		<-started
	}
	assert.True(t, s.Loading().Recommendations)

	close(release[0])
	<-done[0]
	assert.True(t, s.Loading().Recommendations)

	close(release[1])
	<-done[1]
	assert.False(t, s.Loading().Recommendations)
	assert.Equal(t, 2, countKind(events(), EventLoadingChanged))
}

func countKind(evs []Event, kind EventKind) int {
	n := 0
	for _, e := range evs {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
