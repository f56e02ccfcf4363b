package types

import (
	"database/sql/driver"
	"fmt"

	"github.com/lib/pq"
)

// StringArray maps a Go string slice onto a Postgres text[] column.
type StringArray []string

func (s StringArray) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return pq.Array([]string(s)).Value()
}

func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var strs []string
	if err := pq.Array(&strs).Scan(value); err != nil {
		return fmt.Errorf("failed to scan string array: %w", err)
	}
	*s = strs
	return nil
}
