package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arjunk/stemly/ent"
	"github.com/arjunk/stemly/ent/record"
)

// Well-known record keys. The tracker is the only writer; each key
// holds one JSON document.
const (
	KeyStudentData      = "studentData"
	KeyStudentProfile   = "studentProfile"
	KeyCompletedContent = "completedContent"
)

// RecordRepo is the flat key-value persistence layer. Values are
// serialized as JSON.
type RecordRepo interface {
	// Put marshals v and writes it under key, overwriting any
	// previous value.
	Put(ctx context.Context, key string, v any) error

	// Get unmarshals the value stored under key into out. It reports
	// whether the key existed; a stored value that fails to
	// unmarshal returns an error.
	Get(ctx context.Context, key string, out any) (bool, error)

	// Delete removes the value stored under key. Missing keys are a
	// no-op.
	Delete(ctx context.Context, key string) error
}

// recordRepo implements RecordRepo using the ent client.
type recordRepo struct {
	client *ent.Client
}

func (r *recordRepo) Put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal record %q: %w", key, err)
	}

	n, err := r.client.Record.Update().
		Where(record.KeyEQ(key)).
		SetData(raw).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update record %q: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Record.Create().
		SetKey(key).
		SetData(raw).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create record %q: %w", key, err)
	}
	return nil
}

func (r *recordRepo) Get(ctx context.Context, key string, out any) (bool, error) {
	rec, err := r.client.Record.Query().
		Where(record.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("query record %q: %w", key, err)
	}

	if err := json.Unmarshal(rec.Data, out); err != nil {
		return true, fmt.Errorf("unmarshal record %q: %w", key, err)
	}
	return true, nil
}

func (r *recordRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.Record.Delete().
		Where(record.KeyEQ(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}
