package stars

import "time"

// Award records one stage completion's reward.
type Award struct {
	ActivityID       string
	ActivityTitle    string
	StageID          string
	StageName        string
	Stars            int
	ActivityComplete bool
	Badge            string // set when the activity's terminal stage completed
	Reason           string
	AwardedAt        time.Time
}

// Badge is an earned activity badge.
type Badge struct {
	ActivityID string
	Title      string
	Name       string
}
