package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendQuestEvent(ctx context.Context, data QuestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.QuestEvent.Create().
		SetSequence(seqNum).
		SetQuestID(data.QuestID).
		SetAction(data.Action).
		SetAmount(data.Amount).
		SetStatus(data.Status).
		SetSessionID(data.SessionID)

	if data.EventType != "" {
		builder = builder.SetEventType(data.EventType)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save quest event: %w", err)
	}
	return nil
}
