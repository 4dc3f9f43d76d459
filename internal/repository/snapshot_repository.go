package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/Tanzimhossain222/chrono-boost/internal/model"
)

// SnapshotRepository stores one aggregate row per user. The payload column
// holds the serialized snapshot; revision counts writes and the running
// column mirrors the session flag so the ticker can find active users
// without decoding every payload.
type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// StoredSnapshot pairs the decoded aggregate with its storage metadata.
type StoredSnapshot struct {
	UserID    string
	Revision  int64
	Snapshot  model.Snapshot
	UpdatedAt time.Time
}

func (r *SnapshotRepository) CreateInitial(ctx context.Context, userID string) error {
	payload, err := model.EncodeSnapshot(model.NewSnapshot())
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = r.db.ExecContext(
		ctx,
		`INSERT INTO snapshots (user_id, revision, running, payload, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		userID,
		1,
		0,
		string(payload),
		now,
	)
	if err != nil {
		return fmt.Errorf("create initial snapshot: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) Get(ctx context.Context, userID string) (*StoredSnapshot, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT user_id, revision, payload, updated_at
		 FROM snapshots
		 WHERE user_id = ?`,
		userID,
	)
	return scanSnapshot(row)
}

// Mutate loads the user's snapshot, applies fn and writes the whole
// aggregate back in one transaction, bumping the revision. An error from fn
// rolls the transaction back and is returned verbatim so callers can pass
// domain failures through.
func (r *SnapshotRepository) Mutate(ctx context.Context, userID string, fn func(*model.Snapshot) error) (*StoredSnapshot, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(
		ctx,
		`SELECT user_id, revision, payload, updated_at
		 FROM snapshots
		 WHERE user_id = ?`,
		userID,
	)
	stored, err := scanSnapshot(row)
	if err != nil {
		return nil, err
	}

	if err := fn(&stored.Snapshot); err != nil {
		return nil, err
	}

	payload, err := model.EncodeSnapshot(stored.Snapshot)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stored.Revision++
	stored.UpdatedAt = now

	running := 0
	if stored.Snapshot.Session.Running {
		running = 1
	}

	if _, err := tx.ExecContext(
		ctx,
		`UPDATE snapshots
		 SET revision = ?,
		     running = ?,
		     payload = ?,
		     updated_at = ?
		 WHERE user_id = ?`,
		stored.Revision,
		running,
		string(payload),
		now.Format(time.RFC3339Nano),
		userID,
	); err != nil {
		return nil, fmt.Errorf("update snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit snapshot: %w", err)
	}
	return stored, nil
}

// RunningUsers lists the users whose persisted session is currently
// counting down.
func (r *SnapshotRepository) RunningUsers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT user_id FROM snapshots WHERE running = 1`,
	)
	if err != nil {
		return nil, fmt.Errorf("list running users: %w", err)
	}
	defer rows.Close()

	users := make([]string, 0)
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("scan running user: %w", err)
		}
		users = append(users, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate running users: %w", err)
	}
	return users, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSnapshot(s scanner) (*StoredSnapshot, error) {
	stored := StoredSnapshot{}
	var payload string
	var updatedAt string
	err := s.Scan(&stored.UserID, &stored.Revision, &payload, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan snapshot: %w", err)
	}

	snapshot, decodeErr := model.DecodeSnapshot([]byte(payload))
	if decodeErr != nil {
		// Unreadable payloads are repaired with defaults, never fatal.
		log.Printf("snapshot for user %s is unreadable, falling back to defaults: %v", stored.UserID, decodeErr)
	}
	stored.Snapshot = snapshot

	parsedUpdatedAt, parseErr := parseTime(updatedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parse snapshot updated_at: %w", parseErr)
	}
	stored.UpdatedAt = parsedUpdatedAt

	return &stored, nil
}
