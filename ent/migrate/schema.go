// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BadgeEventsColumns holds the columns for the "badge_events" table.
	BadgeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "badge_id", Type: field.TypeString},
		{Name: "condition_kind", Type: field.TypeString},
		{Name: "xp_reward", Type: field.TypeInt, Default: 0},
		{Name: "session_id", Type: field.TypeString},
	}
	// BadgeEventsTable holds the schema information for the "badge_events" table.
	BadgeEventsTable = &schema.Table{
		Name:       "badge_events",
		Columns:    BadgeEventsColumns,
		PrimaryKey: []*schema.Column{BadgeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "badgeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[1]},
			},
			{
				Name:    "badgeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[2]},
			},
			{
				Name:    "badgeevent_badge_id",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[3]},
			},
			{
				Name:    "badgeevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[6]},
			},
		},
	}
	// QuestEventsColumns holds the columns for the "quest_events" table.
	QuestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "quest_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// QuestEventsTable holds the schema information for the "quest_events" table.
	QuestEventsTable = &schema.Table{
		Name:       "quest_events",
		Columns:    QuestEventsColumns,
		PrimaryKey: []*schema.Column{QuestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuestEventsColumns[1]},
			},
			{
				Name:    "questevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuestEventsColumns[2]},
			},
			{
				Name:    "questevent_quest_id",
				Unique:  false,
				Columns: []*schema.Column{QuestEventsColumns[3]},
			},
			{
				Name:    "questevent_action",
				Unique:  false,
				Columns: []*schema.Column{QuestEventsColumns[4]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "item_id", Type: field.TypeString},
		{Name: "quality", Type: field.TypeInt},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "ease_factor", Type: field.TypeFloat64},
		{Name: "repetition", Type: field.TypeInt},
		{Name: "session_id", Type: field.TypeString},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
			{
				Name:    "reviewevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[8]},
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
	// XpEventsColumns holds the columns for the "xp_events" table.
	XpEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "amount", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
		{Name: "total_after", Type: field.TypeInt},
		{Name: "level_after", Type: field.TypeInt},
		{Name: "session_id", Type: field.TypeString},
	}
	// XpEventsTable holds the schema information for the "xp_events" table.
	XpEventsTable = &schema.Table{
		Name:       "xp_events",
		Columns:    XpEventsColumns,
		PrimaryKey: []*schema.Column{XpEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "xpevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[1]},
			},
			{
				Name:    "xpevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[2]},
			},
			{
				Name:    "xpevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BadgeEventsTable,
		QuestEventsTable,
		ReviewEventsTable,
		SnapshotsTable,
		XpEventsTable,
	}
)

func init() {
}
