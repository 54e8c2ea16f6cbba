package store

import (
	"context"
	"fmt"
	"time"

	"github.com/arjunk/stemly/ent"
	"github.com/arjunk/stemly/ent/xpevent"
)

// XPEventData is the payload of a single XP award.
type XPEventData struct {
	AwardID string
	Amount  int
	Reason  string
}

// XPEvent is a persisted XP award.
type XPEvent struct {
	ID        int
	AwardID   string
	Amount    int
	Reason    string
	Timestamp time.Time
}

// XPEventRepo is the append-only XP award log.
type XPEventRepo interface {
	// Append stores a new XP event.
	Append(ctx context.Context, data XPEventData) error

	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]XPEvent, error)
}

// xpEventRepo implements XPEventRepo using the ent client.
type xpEventRepo struct {
	client *ent.Client
}

func (r *xpEventRepo) Append(ctx context.Context, data XPEventData) error {
	_, err := r.client.XPEvent.Create().
		SetAwardID(data.AwardID).
		SetAmount(data.Amount).
		SetReason(data.Reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append xp event: %w", err)
	}
	return nil
}

func (r *xpEventRepo) Recent(ctx context.Context, limit int) ([]XPEvent, error) {
	q := r.client.XPEvent.Query().
		Order(ent.Desc(xpevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query xp events: %w", err)
	}

	events := make([]XPEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, XPEvent{
			ID:        row.ID,
			AwardID:   row.AwardID,
			Amount:    row.Amount,
			Reason:    row.Reason,
			Timestamp: row.Timestamp,
		})
	}
	return events, nil
}
