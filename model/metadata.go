package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/siherrmann/lexgraph/helper"
)

// Metadata represents JSONB metadata stored in PostgreSQL
type Metadata map[string]interface{}

// Value implements the driver.Valuer interface for database storage
func (m Metadata) Value() (driver.Value, error) {
	return m.Marshal()
}

// Scan implements the sql.Scanner interface for database retrieval
func (m *Metadata) Scan(value interface{}) error {
	return m.Unmarshal(value)
}

// Marshal converts Metadata to JSON bytes
func (m Metadata) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

// Unmarshal converts JSON bytes or Metadata to Metadata
func (m *Metadata) Unmarshal(value interface{}) error {
	if value == nil {
		*m = Metadata{}
		return nil
	}

	if s, ok := value.(Metadata); ok {
		*m = Metadata(s)
		return nil
	}

	b, ok := value.([]byte)
	if !ok {
		return helper.NewError("byte assertion", errors.New("type assertion to []byte failed"))
	}

	return json.Unmarshal(b, m)
}

// PropertiesString serializes the metadata as a deterministic
// "key:value;key:value" string with keys sorted alphabetically. Source IDs
// are derived from this string, so the ordering must be stable. An empty
// or nil metadata returns defaultValue.
func (m Metadata) PropertiesString(defaultValue string) string {
	if len(m) == 0 {
		return defaultValue
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s:%v", key, m[key]))
	}
	return strings.Join(pairs, ";")
}

// lastAccessedDateKey is the property name under which the access date is
// recorded on graph nodes.
const lastAccessedDateKey = "last_accessed_date"

// LastAccessedDate returns a metadata fragment recording today's date in
// YYYY-MM-DD format, merged into node properties at indexing time.
func LastAccessedDate() Metadata {
	return Metadata{lastAccessedDateKey: time.Now().Format("2006-01-02")}
}
