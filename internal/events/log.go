package events

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// EventLog records events in SQLite, tagged with the session that
// produced them.
type EventLog struct {
	db        *sql.DB
	sessionID string
}

// NewEventLog creates an event log writing rows for sessionID.
func NewEventLog(db *sql.DB, sessionID string) *EventLog {
	return &EventLog{db: db, sessionID: sessionID}
}

// SessionID returns the id stamped on appended rows.
func (l *EventLog) SessionID() string { return l.sessionID }

// Append persists an event and returns its ID.
func (l *EventLog) Append(e Event) (int64, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return 0, fmt.Errorf("marshal event: %w", err)
	}

	result, err := l.db.Exec(`
		INSERT INTO events (session_id, event_type, entity_type, entity_id, payload, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		l.sessionID, e.EventType(), e.EntityType(), e.EntityID(), string(payload), e.OccurredAt(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}

	return result.LastInsertId()
}

// RawEvent represents a persisted event with its raw payload.
type RawEvent struct {
	ID         int64
	SessionID  string
	EventType  string
	EntityType string
	EntityID   string
	Payload    string
	OccurredAt time.Time
	CreatedAt  time.Time
}

const selectEvents = `
	SELECT id, session_id, event_type, entity_type, entity_id, payload, occurred_at, created_at
	FROM events`

// Filter narrows a Query. Zero fields match everything; every set field
// must match.
type Filter struct {
	SessionID  string
	EntityType string
	EntityID   string
	Since      time.Time // occurred at or after
	Limit      int       // 0 for no limit
}

// Query returns the events matching f, newest first.
func (l *EventLog) Query(f Filter) ([]RawEvent, error) {
	var where []string
	var args []any
	if f.SessionID != "" {
		where = append(where, "session_id = ?")
		args = append(args, f.SessionID)
	}
	if f.EntityType != "" {
		where = append(where, "entity_type = ?")
		args = append(args, f.EntityType)
	}
	if f.EntityID != "" {
		where = append(where, "entity_id = ?")
		args = append(args, f.EntityID)
	}
	if !f.Since.IsZero() {
		where = append(where, "occurred_at >= ?")
		args = append(args, f.Since)
	}

	query := selectEvents
	if len(where) > 0 {
		query += "\n\tWHERE " + strings.Join(where, " AND ")
	}
	query += "\n\tORDER BY id DESC"
	if f.Limit > 0 {
		query += "\n\tLIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := l.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// SessionRecent returns this session's most recent events, newest first.
func (l *EventLog) SessionRecent(limit int) ([]RawEvent, error) {
	return l.Query(Filter{SessionID: l.sessionID, Limit: limit})
}

// Prune removes events older than the given duration.
func (l *EventLog) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	result, err := l.db.Exec(`DELETE FROM events WHERE occurred_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune events: %w", err)
	}
	return result.RowsAffected()
}

func scanEvents(rows *sql.Rows) ([]RawEvent, error) {
	var events []RawEvent
	for rows.Next() {
		var e RawEvent
		if err := rows.Scan(&e.ID, &e.SessionID, &e.EventType, &e.EntityType, &e.EntityID, &e.Payload, &e.OccurredAt, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
