// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/studyquest/ent/badgeevent"
	"github.com/abhisek/studyquest/ent/questevent"
	"github.com/abhisek/studyquest/ent/reviewevent"
	"github.com/abhisek/studyquest/ent/schema"
	"github.com/abhisek/studyquest/ent/snapshot"
	"github.com/abhisek/studyquest/ent/xpevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	badgeeventMixin := schema.BadgeEvent{}.Mixin()
	badgeeventMixinFields0 := badgeeventMixin[0].Fields()
	_ = badgeeventMixinFields0
	badgeeventFields := schema.BadgeEvent{}.Fields()
	_ = badgeeventFields
	// badgeeventDescTimestamp is the schema descriptor for timestamp field.
	badgeeventDescTimestamp := badgeeventMixinFields0[1].Descriptor()
	// badgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	badgeevent.DefaultTimestamp = badgeeventDescTimestamp.Default.(func() time.Time)
	// badgeeventDescBadgeID is the schema descriptor for badge_id field.
	badgeeventDescBadgeID := badgeeventFields[0].Descriptor()
	// badgeevent.BadgeIDValidator is a validator for the "badge_id" field. It is called by the builders before save.
	badgeevent.BadgeIDValidator = badgeeventDescBadgeID.Validators[0].(func(string) error)
	// badgeeventDescConditionKind is the schema descriptor for condition_kind field.
	badgeeventDescConditionKind := badgeeventFields[1].Descriptor()
	// badgeevent.ConditionKindValidator is a validator for the "condition_kind" field. It is called by the builders before save.
	badgeevent.ConditionKindValidator = badgeeventDescConditionKind.Validators[0].(func(string) error)
	// badgeeventDescXpReward is the schema descriptor for xp_reward field.
	badgeeventDescXpReward := badgeeventFields[2].Descriptor()
	// badgeevent.DefaultXpReward holds the default value on creation for the xp_reward field.
	badgeevent.DefaultXpReward = badgeeventDescXpReward.Default.(int)
	// badgeeventDescSessionID is the schema descriptor for session_id field.
	badgeeventDescSessionID := badgeeventFields[3].Descriptor()
	// badgeevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	badgeevent.SessionIDValidator = badgeeventDescSessionID.Validators[0].(func(string) error)
	questeventMixin := schema.QuestEvent{}.Mixin()
	questeventMixinFields0 := questeventMixin[0].Fields()
	_ = questeventMixinFields0
	questeventFields := schema.QuestEvent{}.Fields()
	_ = questeventFields
	// questeventDescTimestamp is the schema descriptor for timestamp field.
	questeventDescTimestamp := questeventMixinFields0[1].Descriptor()
	// questevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	questevent.DefaultTimestamp = questeventDescTimestamp.Default.(func() time.Time)
	// questeventDescQuestID is the schema descriptor for quest_id field.
	questeventDescQuestID := questeventFields[0].Descriptor()
	// questevent.QuestIDValidator is a validator for the "quest_id" field. It is called by the builders before save.
	questevent.QuestIDValidator = questeventDescQuestID.Validators[0].(func(string) error)
	// questeventDescAction is the schema descriptor for action field.
	questeventDescAction := questeventFields[1].Descriptor()
	// questevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	questevent.ActionValidator = questeventDescAction.Validators[0].(func(string) error)
	// questeventDescAmount is the schema descriptor for amount field.
	questeventDescAmount := questeventFields[3].Descriptor()
	// questevent.DefaultAmount holds the default value on creation for the amount field.
	questevent.DefaultAmount = questeventDescAmount.Default.(int)
	// questeventDescStatus is the schema descriptor for status field.
	questeventDescStatus := questeventFields[4].Descriptor()
	// questevent.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	questevent.StatusValidator = questeventDescStatus.Validators[0].(func(string) error)
	// questeventDescSessionID is the schema descriptor for session_id field.
	questeventDescSessionID := questeventFields[5].Descriptor()
	// questevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	questevent.SessionIDValidator = questeventDescSessionID.Validators[0].(func(string) error)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescItemID is the schema descriptor for item_id field.
	revieweventDescItemID := revieweventFields[0].Descriptor()
	// reviewevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewevent.ItemIDValidator = revieweventDescItemID.Validators[0].(func(string) error)
	// revieweventDescQuality is the schema descriptor for quality field.
	revieweventDescQuality := revieweventFields[1].Descriptor()
	// reviewevent.QualityValidator is a validator for the "quality" field. It is called by the builders before save.
	reviewevent.QualityValidator = func() func(int) error {
		validators := revieweventDescQuality.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(quality int) error {
			for _, fn := range fns {
				if err := fn(quality); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// revieweventDescSessionID is the schema descriptor for session_id field.
	revieweventDescSessionID := revieweventFields[5].Descriptor()
	// reviewevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	reviewevent.SessionIDValidator = revieweventDescSessionID.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	xpeventMixin := schema.XPEvent{}.Mixin()
	xpeventMixinFields0 := xpeventMixin[0].Fields()
	_ = xpeventMixinFields0
	xpeventFields := schema.XPEvent{}.Fields()
	_ = xpeventFields
	// xpeventDescTimestamp is the schema descriptor for timestamp field.
	xpeventDescTimestamp := xpeventMixinFields0[1].Descriptor()
	// xpevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	xpevent.DefaultTimestamp = xpeventDescTimestamp.Default.(func() time.Time)
	// xpeventDescAmount is the schema descriptor for amount field.
	xpeventDescAmount := xpeventFields[0].Descriptor()
	// xpevent.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	xpevent.AmountValidator = xpeventDescAmount.Validators[0].(func(int) error)
	// xpeventDescReason is the schema descriptor for reason field.
	xpeventDescReason := xpeventFields[1].Descriptor()
	// xpevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	xpevent.ReasonValidator = xpeventDescReason.Validators[0].(func(string) error)
	// xpeventDescSessionID is the schema descriptor for session_id field.
	xpeventDescSessionID := xpeventFields[4].Descriptor()
	// xpevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	xpevent.SessionIDValidator = xpeventDescSessionID.Validators[0].(func(string) error)
}
