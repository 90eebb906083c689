package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit      int       // max results (0 = unlimited)
	After      int64     // sequence > After
	Before     int64     // sequence < Before
	From       time.Time // timestamp >= From
	To         time.Time // timestamp <= To
	ActivityID string    // restrict to one activity ("" = all)
}

// StarsSnapshotData captures star totals for snapshot persistence.
type StarsSnapshotData struct {
	TotalStars int            `json:"total_stars"`
	ByActivity map[string]int `json:"by_activity"`
}

// ActivityProgressData captures durable per-activity progress.
type ActivityProgressData struct {
	ActivityID      string   `json:"activity_id"`
	CompletedStages []string `json:"completed_stages"`
	Complete        bool     `json:"complete"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version    int                    `json:"version"`
	Stars      *StarsSnapshotData     `json:"stars,omitempty"`
	Activities []ActivityProgressData `json:"activities,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures a sign-in or sign-out.
type SessionEventData struct {
	Action      string // "signin" or "signout"
	LearnerName string
	Role        string
}

// StageEventData captures a single stage completion.
type StageEventData struct {
	RunID            string
	ActivityID       string
	StageID          string
	StageName        string
	Stars            int
	ActivityComplete bool
	Evidence         string
}

// StageEventRecord is a persisted stage event read back from the store.
type StageEventRecord struct {
	RunID            string
	ActivityID       string
	StageID          string
	StageName        string
	Stars            int
	ActivityComplete bool
	Evidence         string
	Sequence         int64
	Timestamp        time.Time
}

// MascotRequestEventData captures the data for a single LLM request event.
type MascotRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// MascotRequestRecord is a persisted mascot request read back from the store.
type MascotRequestRecord struct {
	ID           int
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	Sequence     int64
	Timestamp    time.Time
}

// MascotUsage aggregates mascot request usage for one model.
type MascotUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a sign-in or sign-out.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendStageEvent records a stage completion.
	AppendStageEvent(ctx context.Context, data StageEventData) error

	// AppendMascotRequest records an LLM API call made for Sparky.
	AppendMascotRequest(ctx context.Context, data MascotRequestEventData) error

	// QueryStageEvents returns stage events matching opts, newest first.
	QueryStageEvents(ctx context.Context, opts QueryOpts) ([]StageEventRecord, error)

	// QueryMascotRequests returns mascot request events matching opts,
	// newest first.
	QueryMascotRequests(ctx context.Context, opts QueryOpts) ([]MascotRequestRecord, error)

	// MascotUsageByModel aggregates token usage per model.
	MascotUsageByModel(ctx context.Context) ([]MascotUsage, error)

	// StarTotals returns per-activity star totals and the overall total.
	StarTotals(ctx context.Context) (map[string]int, int, error)

	// CompletedActivities returns the set of activity IDs whose terminal
	// stage has been completed at least once.
	CompletedActivities(ctx context.Context) (map[string]bool, error)
}

// ProfileRecord is the persisted session state: the auth credential and
// the raw user record. UserRecord is kept as an opaque JSON string; the
// auth layer owns its interpretation (including the malformed case).
type ProfileRecord struct {
	AuthToken  string
	UserRecord string
}

// ProfileRepo manages the single persisted profile row.
type ProfileRepo interface {
	// Load returns the stored profile, or nil when signed out.
	Load(ctx context.Context) (*ProfileRecord, error)

	// Save replaces the stored profile.
	Save(ctx context.Context, rec ProfileRecord) error

	// Clear removes the stored profile. Token and user record go together;
	// there is no intermediate state where only one is cleared.
	Clear(ctx context.Context) error
}
