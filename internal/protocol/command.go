// internal/protocol/command.go
package protocol

import "fmt"

const (
	countTemplate        = "?MRN%d"
	observationsTemplate = "?MDR%dA"
)

// Command is an outbound command payload, without framing bytes.
// Immutable once built.
type Command struct {
	text string
}

// BuildCountCommand builds the observation count query for user.
func BuildCountCommand(user int) (Command, error) {
	return build(countTemplate, user)
}

// BuildObservationsCommand builds the observation dump query for user.
func BuildObservationsCommand(user int) (Command, error) {
	return build(observationsTemplate, user)
}

func build(template string, user int) (Command, error) {
	if err := ValidateUser(user); err != nil {
		return Command{}, err
	}
	return Command{text: fmt.Sprintf(template, user)}, nil
}

// ValidateUser checks that user is a device user slot.
func ValidateUser(user int) error {
	if user != UserOne && user != UserTwo {
		return &InvalidUserError{User: user}
	}
	return nil
}

// Bytes returns a copy of the command payload.
func (c Command) Bytes() []byte {
	return []byte(c.text)
}

func (c Command) String() string {
	return c.text
}
