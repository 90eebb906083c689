package stagegraph

// StageID identifies a stage within its graph.
type StageID string

// Kind classifies what a stage asks of the learner.
type Kind int

const (
	KindIntro    Kind = iota // Watch/listen introduction
	KindHandsOn              // Guided build in the interactive lab
	KindPractice             // Interactive knowledge check
	KindPuzzle               // Review puzzle challenge
	KindComplete             // Terminal celebration stage
)

// Label returns the display label for a stage kind.
func (k Kind) Label() string {
	switch k {
	case KindIntro:
		return "Intro"
	case KindHandsOn:
		return "Build"
	case KindPractice:
		return "Activity"
	case KindPuzzle:
		return "Puzzle"
	case KindComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Icon returns the display icon for a stage kind.
func (k Kind) Icon() string {
	switch k {
	case KindIntro:
		return "🎬"
	case KindHandsOn:
		return "⚡"
	case KindPractice:
		return "🎮"
	case KindPuzzle:
		return "🧩"
	case KindComplete:
		return "🏆"
	default:
		return "?"
	}
}

// Stage is a single learning step in an activity.
// Stages are configuration, not runtime state: completion lives in the
// activity run, never here.
type Stage struct {
	ID          StageID
	Name        string
	Kind        Kind
	Order       int // unique within a graph, strictly increasing
	RewardStars int
	Mission     []string // bullet lines describing the task
	// CompletionMessage is shown in the feedback popup when the stage
	// is completed.
	CompletionMessage string
}
