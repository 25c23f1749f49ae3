package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/plastinin/projectgrid/internal/domain"
)

// Timestamp время в JSON в формате domain.TimestampLayout,
// совпадающем с тем, по которому работают фильтры
type Timestamp time.Time

// MarshalJSON пишет время в UTC с тремя знаками миллисекунд
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(domain.FormatTimestamp(time.Time(t)))
}

// UnmarshalJSON принимает любую RFC 3339 строку
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	*t = Timestamp(parsed.UTC())
	return nil
}

// Time возвращает значение как time.Time
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}
