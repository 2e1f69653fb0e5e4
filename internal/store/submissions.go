package store

import (
	"context"
	"fmt"

	"github.com/abelsk/learnpulse/ent"
	"github.com/abelsk/learnpulse/ent/submissionevent"
	"github.com/abelsk/learnpulse/internal/analytics"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSubmissions(ctx context.Context, subs []analytics.Submission) (int, error) {
	written := 0
	for _, sub := range subs {
		seqNum, err := r.seq.Next(ctx)
		if err != nil {
			return written, fmt.Errorf("next sequence: %w", err)
		}

		_, err = r.client.SubmissionEvent.Create().
			SetSequence(seqNum).
			SetUserID(sub.UserID).
			SetStepID(sub.StepID).
			SetStatus(sub.Status).
			Save(ctx)
		if err != nil {
			return written, fmt.Errorf("save submission event: %w", err)
		}
		written++
	}
	return written, nil
}

func (r *eventRepo) AllSubmissions(ctx context.Context) ([]analytics.Submission, error) {
	events, err := r.client.SubmissionEvent.Query().
		Order(ent.Asc(submissionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query submission events: %w", err)
	}

	subs := make([]analytics.Submission, len(events))
	for i, e := range events {
		subs[i] = analytics.Submission{
			UserID: e.UserID,
			StepID: e.StepID,
			Status: e.Status,
		}
	}
	return subs, nil
}

func (r *eventRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.SubmissionEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count submission events: %w", err)
	}
	return n, nil
}
