package tour

import (
	"context"
	"encoding/json"
	"sync"

	"estatehub/internal/common/logger"
	"estatehub/internal/common/metrics"
	"estatehub/internal/storage"
)

// Persisted storage keys. Unchanged from the web client so saved progress
// carries over.
const (
	completedToursKey  = "completedTours"
	completedStepsKey  = "completedSteps"
	showWelcomeTourKey = "showWelcomeTour"
)

// Keyboard keys honored while a tour is active.
const (
	KeyEscape     = "Escape"
	KeyEnter      = "Enter"
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
)

// Engine sequences a single active tour through its steps, tracking and
// persisting completion. It is either Inactive or Active(tour, stepIndex);
// every transition persists progress before returning.
type Engine struct {
	mu   sync.Mutex
	reg  *Registry
	kv   storage.KV
	log  logger.Logger
	geom Geometry

	active    *Tour
	stepIndex int

	completedTours []string
	completedSteps map[string][]string
	showWelcome    bool
}

// NewEngine builds an engine over the given registry with the default panel
// geometry, loading persisted progress. Missing or malformed persisted
// values default to empty progress and ShowWelcome=true without error.
func NewEngine(ctx context.Context, reg *Registry, kv storage.KV, log logger.Logger) *Engine {
	return NewEngineWithGeometry(ctx, reg, kv, log, DefaultGeometry())
}

// NewEngineWithGeometry builds an engine using an explicit panel geometry
// for step placement.
func NewEngineWithGeometry(ctx context.Context, reg *Registry, kv storage.KV, log logger.Logger, geom Geometry) *Engine {
	e := &Engine{
		reg:            reg,
		kv:             kv,
		log:            log.WithFields(map[string]interface{}{"component": "tour-engine"}),
		geom:           geom,
		completedSteps: make(map[string][]string),
		showWelcome:    true,
	}
	e.load(ctx)
	return e
}

func (e *Engine) load(ctx context.Context) {
	loadJSON(ctx, e.kv, e.log, completedToursKey, &e.completedTours)
	loadJSON(ctx, e.kv, e.log, completedStepsKey, &e.completedSteps)
	loadJSON(ctx, e.kv, e.log, showWelcomeTourKey, &e.showWelcome)
	if e.completedSteps == nil {
		e.completedSteps = make(map[string][]string)
	}
}

func loadJSON(ctx context.Context, kv storage.KV, log logger.Logger, key string, dest interface{}) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Warn("failed to read persisted tour state, using default", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Warn("persisted tour state is malformed, using default", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// StartTour activates the named tour at its first step. Switching tours
// while active overwrites the progress pointer. An unknown id is a silent
// no-op; the tour launcher is a navigation convenience, not an API surface.
func (e *Engine) StartTour(_ context.Context, tourID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.reg.Get(tourID)
	if !ok {
		e.log.Debug("unknown tour id ignored", map[string]interface{}{"tourId": tourID})
		return
	}

	e.active = &t
	e.stepIndex = 0
	metrics.TourTransitions.WithLabelValues("start").Inc()
	e.log.Info("tour started", map[string]interface{}{"tourId": tourID, "steps": len(t.Steps)})
}

// NextStep marks the current step completed and advances; on the last step
// it behaves as CompleteTour.
func (e *Engine) NextStep(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return
	}

	if e.stepIndex < len(e.active.Steps)-1 {
		step := e.active.Steps[e.stepIndex]
		e.markStepCompletedLocked(ctx, e.active.ID, step.ID)
		e.stepIndex++
		metrics.TourTransitions.WithLabelValues("next").Inc()
		return
	}

	e.completeTourLocked(ctx)
}

// PreviousStep moves back one step; a no-op on the first step.
func (e *Engine) PreviousStep(_ context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil || e.stepIndex == 0 {
		return
	}
	e.stepIndex--
	metrics.TourTransitions.WithLabelValues("previous").Inc()
}

// SkipTour deactivates immediately. Remaining steps stay uncompleted and
// the tour is not added to the completed set.
func (e *Engine) SkipTour(_ context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return
	}
	e.log.Info("tour skipped", map[string]interface{}{
		"tourId":    e.active.ID,
		"stepIndex": e.stepIndex,
	})
	e.active = nil
	e.stepIndex = 0
	metrics.TourTransitions.WithLabelValues("skip").Inc()
}

// CompleteTour marks every step of the active tour completed, records the
// tour as completed and deactivates.
func (e *Engine) CompleteTour(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.completeTourLocked(ctx)
}

func (e *Engine) completeTourLocked(ctx context.Context) {
	if e.active == nil {
		return
	}

	tourID := e.active.ID
	for _, step := range e.active.Steps {
		e.markStepCompletedLocked(ctx, tourID, step.ID)
	}

	if !containsString(e.completedTours, tourID) {
		e.completedTours = append(e.completedTours, tourID)
		e.persist(ctx, completedToursKey, e.completedTours)
	}

	e.active = nil
	e.stepIndex = 0
	metrics.TourTransitions.WithLabelValues("complete").Inc()
	e.log.Info("tour completed", map[string]interface{}{"tourId": tourID})
}

// HandleKey maps keyboard input to transitions while a tour is active.
func (e *Engine) HandleKey(ctx context.Context, key string) {
	e.mu.Lock()
	active := e.active != nil
	e.mu.Unlock()
	if !active {
		return
	}

	switch key {
	case KeyEscape:
		e.SkipTour(ctx)
	case KeyArrowRight, KeyEnter:
		e.NextStep(ctx)
	case KeyArrowLeft:
		e.PreviousStep(ctx)
	}
}

// IsStepCompleted reports whether the (tour, step) pair has been completed.
func (e *Engine) IsStepCompleted(tourID, stepID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return containsString(e.completedSteps[tourID], stepID)
}

// MarkStepCompleted records a completed step and persists the map.
func (e *Engine) MarkStepCompleted(ctx context.Context, tourID, stepID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.markStepCompletedLocked(ctx, tourID, stepID)
}

func (e *Engine) markStepCompletedLocked(ctx context.Context, tourID, stepID string) {
	if containsString(e.completedSteps[tourID], stepID) {
		return
	}
	e.completedSteps[tourID] = append(e.completedSteps[tourID], stepID)
	e.persist(ctx, completedStepsKey, e.completedSteps)
}

// SetShowWelcome toggles the welcome-tour flag and persists it.
func (e *Engine) SetShowWelcome(ctx context.Context, show bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.showWelcome = show
	e.persist(ctx, showWelcomeTourKey, e.showWelcome)
}

// ShowWelcome reports whether the welcome tour should be offered.
func (e *Engine) ShowWelcome() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.showWelcome
}

// ResetProgress clears all completion state and restores the welcome flag,
// persisting the cleared values.
func (e *Engine) ResetProgress(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.completedTours = nil
	e.completedSteps = make(map[string][]string)
	e.showWelcome = true

	e.persist(ctx, completedToursKey, []string{})
	e.persist(ctx, completedStepsKey, e.completedSteps)
	e.persist(ctx, showWelcomeTourKey, e.showWelcome)
}

// CurrentStep returns the active step, if any.
func (e *Engine) CurrentStep() (Step, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentStepLocked()
}

func (e *Engine) currentStepLocked() (Step, bool) {
	if e.active == nil || e.stepIndex >= len(e.active.Steps) {
		return Step{}, false
	}
	return e.active.Steps[e.stepIndex], true
}

// PlaceStep computes the tooltip placement for the current step using the
// engine's configured panel geometry. The second return is false when no
// tour is active.
func (e *Engine) PlaceStep(resolve Resolver, vp Viewport) (Placement, bool) {
	e.mu.Lock()
	step, ok := e.currentStepLocked()
	geom := e.geom
	e.mu.Unlock()

	if !ok {
		return Placement{}, false
	}
	return geom.Compute(step, resolve, vp), true
}

// Snapshot returns a copy of the observable engine state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := State{
		StepIndex:      e.stepIndex,
		ShowWelcome:    e.showWelcome,
		CompletedTours: append([]string(nil), e.completedTours...),
	}
	if e.active != nil {
		s.Active = true
		s.ActiveTourID = e.active.ID
		s.StepCount = len(e.active.Steps)
	}
	return s
}

// Tours exposes the registry's definitions for launcher UIs.
func (e *Engine) Tours() []Tour {
	return e.reg.List()
}

func (e *Engine) persist(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		e.log.Error("failed to encode tour state", map[string]interface{}{"key": key, "error": err.Error()})
		return
	}
	if err := e.kv.Set(ctx, key, string(data)); err != nil {
		metrics.StorageWriteFailures.WithLabelValues(key).Inc()
		e.log.Error("failed to persist tour state", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
