// Package tour drives guided onboarding tours: an ordered-step state
// machine with persisted progress and pure tooltip placement geometry.
package tour

// Position is the requested side of the target to anchor the tooltip on.
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionLeft   Position = "left"
	PositionRight  Position = "right"
	PositionCenter Position = "center"
)

// TargetBody is the whole-viewport sentinel target; steps using it render a
// centered panel with no spotlight.
const TargetBody = "body"

// Step is one unit of a tour: explanatory text anchored to a UI target.
type Step struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Target   string   `json:"target"`
	Position Position `json:"position"`
	Page     string   `json:"page,omitempty"`
}

// Tour is a named, ordered sequence of steps.
type Tour struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Steps       []Step `json:"steps"`
}

// State is a read-only snapshot of the engine, safe to hand to a renderer.
type State struct {
	Active         bool
	ActiveTourID   string
	StepIndex      int
	StepCount      int
	CompletedTours []string
	ShowWelcome    bool
}
