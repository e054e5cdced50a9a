package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audited actions.
const (
	ActionCalculate         = "calculate_salinity"
	ActionSummarize         = "summarize_salinity"
	ActionUpdateAssumptions = "update_assumptions"
)

// LogEntry is one persisted request or audit record. Audit records carry
// an ActionType and the calculation context in Fields.
type LogEntry struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time              `bson:"timestamp" json:"timestamp"`
	Level      string                 `bson:"level" json:"level"`
	Message    string                 `bson:"message" json:"message"`
	RequestID  string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string                 `bson:"method,omitempty" json:"method,omitempty"`
	Path       string                 `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                    `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64                  `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string                 `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string                 `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string                 `bson:"error,omitempty" json:"error,omitempty"`
	ActionType string                 `bson:"action_type,omitempty" json:"action_type,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// Set stores a context field, skipping empty strings and nil values so
// stored documents only carry what the request actually supplied.
func (e *LogEntry) Set(key string, value interface{}) *LogEntry {
	switch v := value.(type) {
	case nil:
		return e
	case string:
		if v == "" {
			return e
		}
	case *float64:
		if v == nil {
			return e
		}
		value = *v
	}
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}
