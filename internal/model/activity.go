package model

import "github.com/google/uuid"

type ActivityKind string

const (
	ActivityUserCreated        ActivityKind = "user.created"
	ActivityMealCreated        ActivityKind = "meal.created"
	ActivityMealUpdated        ActivityKind = "meal.updated"
	ActivityMealDeleted        ActivityKind = "meal.deleted"
	ActivityTransactionCreated ActivityKind = "transaction.created"
)

// ActivityEvent is an audit row written by the background worker.
type ActivityEvent struct {
	Base
	SessionID string       `json:"session_id" db:"session_id"`
	Kind      ActivityKind `json:"kind" db:"kind"`
	EntityID  *uuid.UUID   `json:"entity_id" db:"entity_id"`
}
