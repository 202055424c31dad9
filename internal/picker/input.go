package picker

import (
	"github.com/chris-regnier/datepick/internal/calendar"
)

// SetInput records text typed into the field. Valid text moves the
// selection and the anchor to the typed date; invalid text is kept as typed
// and only sets the error, leaving the rest of the state alone.
func (s *State) SetInput(text string) {
	s.input = text
	d, err := calendar.Parse(text)
	if err != nil {
		s.inputErr = err
		return
	}
	s.commit(d)
}

// InputText returns the field contents, valid or not.
func (s *State) InputText() string { return s.input }

// InputError returns the last parse error, or nil when the field is valid.
func (s *State) InputError() error { return s.inputErr }

// InputMessage returns the inline message for the field, empty when valid.
func (s *State) InputMessage() string {
	if s.inputErr == nil {
		return ""
	}
	return s.inputErr.Error()
}

// Toggle shows or hides the calendar. It works whether or not the field
// currently holds a valid date.
func (s *State) Toggle() {
	s.open = !s.open
}

// Open shows the calendar.
func (s *State) Open() {
	s.open = true
}

// Close hides the calendar.
func (s *State) Close() {
	s.open = false
}
