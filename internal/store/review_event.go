package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetItemID(data.ItemID).
		SetQuality(data.Quality).
		SetIntervalDays(data.IntervalDays).
		SetEaseFactor(data.EaseFactor).
		SetRepetition(data.Repetition).
		SetSessionID(data.SessionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) ReviewStats(ctx context.Context) (int, float64, error) {
	events, err := r.client.ReviewEvent.Query().All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query review events: %w", err)
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	sum := 0
	for _, e := range events {
		sum += e.Quality
	}
	return len(events), float64(sum) / float64(len(events)), nil
}
