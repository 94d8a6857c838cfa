package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// StringList is a JSONB-backed string slice used for qualifications,
// languages and application documents.
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []string
	err := json.Unmarshal(bytes, &result)
	*l = StringList(result)
	return err
}
