package thought

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Thought is one record of the content set. Records are ordered: the record
// at index i is "Day i+1", and the order is never changed after load.
type Thought struct {
	ID         int      `json:"id"`
	Text       string   `json:"text"`
	Reflection string   `json:"reflection"`
	Tags       []string `json:"tags,omitempty"`
}

// Validate validates a single record.
func (t Thought) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.ID, validation.Required, validation.Min(1)),
		validation.Field(&t.Text, validation.Required),
	)
}

// ValidateSet validates every record plus the positional invariant:
// id must equal array position + 1.
func ValidateSet(ts []Thought) error {
	for i, t := range ts {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
		if t.ID != i+1 {
			return fmt.Errorf("record %d: id %d does not match position", i+1, t.ID)
		}
	}
	return nil
}
