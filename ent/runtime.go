// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tinkerlab/tinkeralpha/ent/mascotrequestevent"
	"github.com/tinkerlab/tinkeralpha/ent/profile"
	"github.com/tinkerlab/tinkeralpha/ent/schema"
	"github.com/tinkerlab/tinkeralpha/ent/sessionevent"
	"github.com/tinkerlab/tinkeralpha/ent/snapshot"
	"github.com/tinkerlab/tinkeralpha/ent/stageevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	mascotrequesteventMixin := schema.MascotRequestEvent{}.Mixin()
	mascotrequesteventMixinFields0 := mascotrequesteventMixin[0].Fields()
	_ = mascotrequesteventMixinFields0
	mascotrequesteventFields := schema.MascotRequestEvent{}.Fields()
	_ = mascotrequesteventFields
	// mascotrequesteventDescTimestamp is the schema descriptor for timestamp field.
	mascotrequesteventDescTimestamp := mascotrequesteventMixinFields0[1].Descriptor()
	// mascotrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	mascotrequestevent.DefaultTimestamp = mascotrequesteventDescTimestamp.Default.(func() time.Time)
	// mascotrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	mascotrequesteventDescInputTokens := mascotrequesteventFields[3].Descriptor()
	// mascotrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	mascotrequestevent.DefaultInputTokens = mascotrequesteventDescInputTokens.Default.(int)
	// mascotrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	mascotrequesteventDescOutputTokens := mascotrequesteventFields[4].Descriptor()
	// mascotrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	mascotrequestevent.DefaultOutputTokens = mascotrequesteventDescOutputTokens.Default.(int)
	// mascotrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	mascotrequesteventDescLatencyMs := mascotrequesteventFields[5].Descriptor()
	// mascotrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	mascotrequestevent.DefaultLatencyMs = mascotrequesteventDescLatencyMs.Default.(int64)
	// mascotrequesteventDescErrorMessage is the schema descriptor for error_message field.
	mascotrequesteventDescErrorMessage := mascotrequesteventFields[7].Descriptor()
	// mascotrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	mascotrequestevent.DefaultErrorMessage = mascotrequesteventDescErrorMessage.Default.(string)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescAuthToken is the schema descriptor for auth_token field.
	profileDescAuthToken := profileFields[0].Descriptor()
	// profile.AuthTokenValidator is a validator for the "auth_token" field. It is called by the builders before save.
	profile.AuthTokenValidator = profileDescAuthToken.Validators[0].(func(string) error)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[2].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[0].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescLearnerName is the schema descriptor for learner_name field.
	sessioneventDescLearnerName := sessioneventFields[1].Descriptor()
	// sessionevent.DefaultLearnerName holds the default value on creation for the learner_name field.
	sessionevent.DefaultLearnerName = sessioneventDescLearnerName.Default.(string)
	// sessioneventDescRole is the schema descriptor for role field.
	sessioneventDescRole := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultRole holds the default value on creation for the role field.
	sessionevent.DefaultRole = sessioneventDescRole.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	stageeventMixin := schema.StageEvent{}.Mixin()
	stageeventMixinFields0 := stageeventMixin[0].Fields()
	_ = stageeventMixinFields0
	stageeventFields := schema.StageEvent{}.Fields()
	_ = stageeventFields
	// stageeventDescTimestamp is the schema descriptor for timestamp field.
	stageeventDescTimestamp := stageeventMixinFields0[1].Descriptor()
	// stageevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	stageevent.DefaultTimestamp = stageeventDescTimestamp.Default.(func() time.Time)
	// stageeventDescRunID is the schema descriptor for run_id field.
	stageeventDescRunID := stageeventFields[0].Descriptor()
	// stageevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	stageevent.RunIDValidator = stageeventDescRunID.Validators[0].(func(string) error)
	// stageeventDescActivityID is the schema descriptor for activity_id field.
	stageeventDescActivityID := stageeventFields[1].Descriptor()
	// stageevent.ActivityIDValidator is a validator for the "activity_id" field. It is called by the builders before save.
	stageevent.ActivityIDValidator = stageeventDescActivityID.Validators[0].(func(string) error)
	// stageeventDescStageID is the schema descriptor for stage_id field.
	stageeventDescStageID := stageeventFields[2].Descriptor()
	// stageevent.StageIDValidator is a validator for the "stage_id" field. It is called by the builders before save.
	stageevent.StageIDValidator = stageeventDescStageID.Validators[0].(func(string) error)
	// stageeventDescStageName is the schema descriptor for stage_name field.
	stageeventDescStageName := stageeventFields[3].Descriptor()
	// stageevent.DefaultStageName holds the default value on creation for the stage_name field.
	stageevent.DefaultStageName = stageeventDescStageName.Default.(string)
	// stageeventDescStars is the schema descriptor for stars field.
	stageeventDescStars := stageeventFields[4].Descriptor()
	// stageevent.DefaultStars holds the default value on creation for the stars field.
	stageevent.DefaultStars = stageeventDescStars.Default.(int)
	// stageeventDescActivityComplete is the schema descriptor for activity_complete field.
	stageeventDescActivityComplete := stageeventFields[5].Descriptor()
	// stageevent.DefaultActivityComplete holds the default value on creation for the activity_complete field.
	stageevent.DefaultActivityComplete = stageeventDescActivityComplete.Default.(bool)
	// stageeventDescEvidence is the schema descriptor for evidence field.
	stageeventDescEvidence := stageeventFields[6].Descriptor()
	// stageevent.DefaultEvidence holds the default value on creation for the evidence field.
	stageevent.DefaultEvidence = stageeventDescEvidence.Default.(string)
}
