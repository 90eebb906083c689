// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MascotRequestEventsColumns holds the columns for the "mascot_request_events" table.
	MascotRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// MascotRequestEventsTable holds the schema information for the "mascot_request_events" table.
	MascotRequestEventsTable = &schema.Table{
		Name:       "mascot_request_events",
		Columns:    MascotRequestEventsColumns,
		PrimaryKey: []*schema.Column{MascotRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mascotrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MascotRequestEventsColumns[1]},
			},
			{
				Name:    "mascotrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MascotRequestEventsColumns[2]},
			},
			{
				Name:    "mascotrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{MascotRequestEventsColumns[3]},
			},
			{
				Name:    "mascotrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{MascotRequestEventsColumns[5]},
			},
			{
				Name:    "mascotrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{MascotRequestEventsColumns[9]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "auth_token", Type: field.TypeString},
		{Name: "user_record", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "learner_name", Type: field.TypeString, Default: ""},
		{Name: "role", Type: field.TypeString, Default: ""},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// StageEventsColumns holds the columns for the "stage_events" table.
	StageEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "activity_id", Type: field.TypeString},
		{Name: "stage_id", Type: field.TypeString},
		{Name: "stage_name", Type: field.TypeString, Default: ""},
		{Name: "stars", Type: field.TypeInt, Default: 0},
		{Name: "activity_complete", Type: field.TypeBool, Default: false},
		{Name: "evidence", Type: field.TypeString, Default: ""},
	}
	// StageEventsTable holds the schema information for the "stage_events" table.
	StageEventsTable = &schema.Table{
		Name:       "stage_events",
		Columns:    StageEventsColumns,
		PrimaryKey: []*schema.Column{StageEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stageevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[1]},
			},
			{
				Name:    "stageevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[2]},
			},
			{
				Name:    "stageevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[3]},
			},
			{
				Name:    "stageevent_activity_id",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[4]},
			},
			{
				Name:    "stageevent_stage_id",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MascotRequestEventsTable,
		ProfilesTable,
		SessionEventsTable,
		SnapshotsTable,
		StageEventsTable,
	}
)

func init() {
}
