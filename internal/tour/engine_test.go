package tour

import (
	"context"
	"testing"

	"estatehub/internal/common/logger"
	"estatehub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func testTour() Tour {
	return Tour{
		ID:       "test-tour",
		Name:     "Test Tour",
		Category: "general",
		Steps: []Step{
			{ID: "one", Title: "One", Target: "#one", Position: PositionBottom},
			{ID: "two", Title: "Two", Target: "#two", Position: PositionTop},
			{ID: "three", Title: "Three", Target: TargetBody, Position: PositionCenter},
		},
	}
}

func newTestEngine(t *testing.T, kv storage.KV) *Engine {
	t.Helper()
	return NewEngine(context.Background(), NewRegistry(testTour()), kv, logger.NewTestLogger(t))
}

// ==========================
// Lifecycle
// ==========================

func TestEngine_StartUnknownTourIsNoOp(t *testing.T) {
	e := newTestEngine(t, storage.NewMemory())

	e.StartTour(context.Background(), "no-such-tour")

	s := e.Snapshot()
	assert.False(t, s.Active)
}

func TestEngine_StartActivatesFirstStep(t *testing.T) {
	e := newTestEngine(t, storage.NewMemory())

	e.StartTour(context.Background(), "test-tour")

	step, ok := e.CurrentStep()
	require.True(t, ok)
	assert.Equal(t, "one", step.ID)

	s := e.Snapshot()
	assert.True(t, s.Active)
	assert.Equal(t, "test-tour", s.ActiveTourID)
	assert.Equal(t, 0, s.StepIndex)
	assert.Equal(t, 3, s.StepCount)
}

func TestEngine_NextStepMarksAndAdvances(t *testing.T) {
	e := newTestEngine(t, storage.NewMemory())
	ctx := context.Background()

	e.StartTour(ctx, "test-tour")
	e.NextStep(ctx)

	step, ok := e.CurrentStep()
	require.True(t, ok)
	assert.Equal(t, "two", step.ID)
	assert.True(t, e.IsStepCompleted("test-tour", "one"))
	assert.False(t, e.IsStepCompleted("test-tour", "two"))
}

func TestEngine_NextOnLastStepCompletesTour(t *testing.T) {
	e := newTestEngine(t, storage.NewMemory())
	ctx := context.Background()

	e.StartTour(ctx, "test-tour")
	e.NextStep(ctx)
	e.NextStep(ctx)
	e.NextStep(ctx)

	s := e.Snapshot()
	assert.False(t, s.Active)
	assert.Contains(t, s.CompletedTours, "test-tour")
	for _, stepID := range []string{"one", "two", "three"} {
		assert.True(t, e.IsStepCompleted("test-tour", stepID), stepID)
	}
}

func TestEngine_CompleteTourMarksAllStepsAtOnce(t *testing.T) {
	e := newTestEngine(t, storage.NewMemory())
	ctx := context.Background()

	e.StartTour(ctx, "test-tour")
	e.CompleteTour(ctx)

	s := e.Snapshot()
	assert.False(t, s.Active)
	assert.Equal(t, []string{"test-tour"}, s.CompletedTours)
	assert.True(t, e.IsStepCompleted("test-tour", "three"))
}

func TestEngine_SkipDoesNotComplete(t *testing.T) {
	e := newTestEngine(t, storage.NewMemory())
	ctx := context.Background()

	e.StartTour(ctx, "test-tour")
	e.NextStep(ctx)
	e.SkipTour(ctx)

	s := e.Snapshot()
	assert.False(t, s.Active)
	assert.Empty(t, s.CompletedTours)
	// Steps already passed stay completed; the rest do not.
	assert.True(t, e.IsStepCompleted("test-tour", "one"))
	assert.False(t, e.IsStepCompleted("test-tour", "two"))
}

func TestEngine_PreviousStep(t *testing.T) {
	e := newTestEngine(t, storage.NewMemory())
	ctx := context.Background()

	e.StartTour(ctx, "test-tour")

	// No-op on the first step.
	e.PreviousStep(ctx)
	assert.Equal(t, 0, e.Snapshot().StepIndex)

	e.NextStep(ctx)
	e.PreviousStep(ctx)
	step, ok := e.CurrentStep()
	require.True(t, ok)
	assert.Equal(t, "one", step.ID)
}

func TestEngine_RestartResetsProgressPointer(t *testing.T) {
	e := newTestEngine(t, storage.NewMemory())
	ctx := context.Background()

	e.StartTour(ctx, "test-tour")
	e.NextStep(ctx)
	e.StartTour(ctx, "test-tour")

	assert.Equal(t, 0, e.Snapshot().StepIndex)
}

// ==========================
// Keyboard handling
// ==========================

func TestEngine_HandleKey(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantIndex int
		wantActiv bool
	}{
		{name: "escape skips", key: KeyEscape, wantIndex: 0, wantActiv: false},
		{name: "arrow right advances", key: KeyArrowRight, wantIndex: 2, wantActiv: true},
		{name: "enter advances", key: KeyEnter, wantIndex: 2, wantActiv: true},
		{name: "arrow left goes back", key: KeyArrowLeft, wantIndex: 0, wantActiv: true},
		{name: "other keys are ignored", key: "Tab", wantIndex: 1, wantActiv: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, storage.NewMemory())
			ctx := context.Background()
			e.StartTour(ctx, "test-tour")
			e.NextStep(ctx)

			e.HandleKey(ctx, tt.key)

			s := e.Snapshot()
			assert.Equal(t, tt.wantActiv, s.Active)
			if tt.wantActiv {
				assert.Equal(t, tt.wantIndex, s.StepIndex)
			}
		})
	}
}

func TestEngine_HandleKeyIgnoredWhenInactive(t *testing.T) {
	e := newTestEngine(t, storage.NewMemory())

	e.HandleKey(context.Background(), KeyEnter)

	assert.False(t, e.Snapshot().Active)
}

// ==========================
// Persistence
// ==========================

func TestEngine_ProgressSurvivesReload(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()

	e := newTestEngine(t, kv)
	e.StartTour(ctx, "test-tour")
	e.CompleteTour(ctx)
	e.SetShowWelcome(ctx, false)

	reloaded := newTestEngine(t, kv)
	assert.Contains(t, reloaded.Snapshot().CompletedTours, "test-tour")
	assert.True(t, reloaded.IsStepCompleted("test-tour", "two"))
	assert.False(t, reloaded.ShowWelcome())
}

func TestEngine_MalformedStateFallsBackToDefaults(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "completedTours", "{not json"))
	require.NoError(t, kv.Set(ctx, "completedSteps", "42"))
	require.NoError(t, kv.Set(ctx, "showWelcomeTour", "maybe"))

	e := newTestEngine(t, kv)

	s := e.Snapshot()
	assert.Empty(t, s.CompletedTours)
	assert.True(t, e.ShowWelcome())
	assert.False(t, e.IsStepCompleted("test-tour", "one"))
}

func TestEngine_FreshStateDefaults(t *testing.T) {
	e := newTestEngine(t, storage.NewMemory())

	s := e.Snapshot()
	assert.False(t, s.Active)
	assert.Empty(t, s.CompletedTours)
	assert.True(t, s.ShowWelcome)
}

func TestEngine_ResetProgress(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()

	e := newTestEngine(t, kv)
	e.StartTour(ctx, "test-tour")
	e.CompleteTour(ctx)
	e.SetShowWelcome(ctx, false)

	e.ResetProgress(ctx)

	assert.Empty(t, e.Snapshot().CompletedTours)
	assert.False(t, e.IsStepCompleted("test-tour", "one"))
	assert.True(t, e.ShowWelcome())

	// The cleared state is what a reload sees.
	reloaded := newTestEngine(t, kv)
	assert.Empty(t, reloaded.Snapshot().CompletedTours)
	assert.True(t, reloaded.ShowWelcome())
}

// ==========================
// Placement
// ==========================

func TestEngine_PlaceStepUsesConfiguredGeometry(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()
	geom := Geometry{PanelWidth: 400, PanelHeight: 100, Margin: 10}
	e := NewEngineWithGeometry(ctx, NewRegistry(testTour()), kv, logger.NewTestLogger(t), geom)

	e.StartTour(ctx, "test-tour")
	e.NextStep(ctx)
	e.NextStep(ctx)
	// Third step targets the whole viewport, so the centered tooltip
	// reflects the configured panel size directly.
	vp := Viewport{Width: 1280, Height: 800}

	p, ok := e.PlaceStep(resolveNothing, vp)
	require.True(t, ok)
	assert.Equal(t, Point{Top: 800/2 - 50, Left: 1280/2 - 200}, p.Tooltip)
}

func TestEngine_PlaceStepInactive(t *testing.T) {
	e := newTestEngine(t, storage.NewMemory())

	_, ok := e.PlaceStep(resolveNothing, Viewport{Width: 1280, Height: 800})
	assert.False(t, ok)
}

func TestEngine_PlaceStepResolvesActiveTarget(t *testing.T) {
	e := newTestEngine(t, storage.NewMemory())
	ctx := context.Background()
	e.StartTour(ctx, "test-tour")

	target := Rect{Top: 400, Left: 600, Width: 100, Height: 40}
	resolve := func(sel string) (Rect, bool) {
		if sel == "#one" {
			return target, true
		}
		return Rect{}, false
	}

	p, ok := e.PlaceStep(resolve, testViewport())
	require.True(t, ok)
	require.NotNil(t, p.Spotlight)
	assert.Equal(t, target, *p.Spotlight)
}

// ==========================
// Registry
// ==========================

func TestRegistry_Lookup(t *testing.T) {
	reg := NewRegistry(testTour())

	got, ok := reg.Get("test-tour")
	require.True(t, ok)
	assert.Equal(t, "Test Tour", got.Name)

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestBuiltinTours_AreRegistrable(t *testing.T) {
	reg := NewRegistry(BuiltinTours()...)

	for _, id := range []string{"welcome", "property-search", "post-property", "market-analytics"} {
		tr, ok := reg.Get(id)
		require.True(t, ok, id)
		assert.NotEmpty(t, tr.Steps, id)
	}
}
