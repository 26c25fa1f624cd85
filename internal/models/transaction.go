package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionDB represents a transaction row in the database
type TransactionDB struct {
	TransactionID uuid.UUID `json:"transaction_id" db:"transaction_id"` // Unique identifier, assigned by the store
	Amount        float64   `json:"amount" db:"amount"`                 // Monetary value, always stored as a number
	Description   string    `json:"description" db:"description"`       // Human-readable description
	Date          time.Time `json:"date" db:"date"`                     // When the transaction occurred
	CreatedAt     time.Time `json:"created_at" db:"created_at"`         // Timestamp when the row was created
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`         // Timestamp of the last update
}

// TransactionCreate carries the fields of a new transaction.
type TransactionCreate struct {
	Amount      float64
	Description string
	Date        time.Time
}

// TransactionPatch carries the fields of a partial update.
// Nil fields are left unchanged in the stored record.
type TransactionPatch struct {
	Amount      *float64
	Description *string
	Date        *time.Time
}

// MutationEvent describes one committed ledger mutation, published to Kafka.
type MutationEvent struct {
	EventID       string `json:"event_id"`       // Unique identifier of the event itself
	Operation     string `json:"operation"`      // "create", "update" or "delete"
	TransactionID string `json:"transaction_id"` // Identifier of the affected transaction
	Timestamp     int64  `json:"timestamp"`      // Unix timestamp (in seconds) when the mutation committed
}

// Amount is a transaction amount that decodes from both JSON numbers and
// numeric-looking JSON strings, e.g. "42.50". Whatever the caller sends,
// the value is kept numeric.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("amount %q is not numeric", s)
	}
	*a = Amount(f)
	return nil
}

// Float64 returns the amount as a plain float64.
func (a Amount) Float64() float64 {
	return float64(a)
}

// dateLayouts are tried in order when decoding a Date.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date is a transaction date that decodes from RFC3339 timestamps as well
// as plain YYYY-MM-DD strings.
type Date time.Time

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	str = strings.TrimSpace(str)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			*d = Date(t)
			return nil
		}
	}
	return fmt.Errorf("date %q is not in a supported format", str)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d))
}

// Time returns the date as a time.Time.
func (d Date) Time() time.Time {
	return time.Time(d)
}
