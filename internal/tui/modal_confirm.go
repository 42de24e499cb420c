package tui

// ConfirmAction enumerates the destructive operations gated by the
// confirm modal.
type ConfirmAction int

const (
	ConfirmReset ConfirmAction = iota
	ConfirmRemove
)

// ConfirmState holds the pending destructive action while the modal is
// open. The underlying mutation fires only on an affirmative key.
type ConfirmState struct {
	Action   ConfirmAction
	TaskID   string
	TaskName string
}

func (c ConfirmState) Prompt() string {
	switch c.Action {
	case ConfirmReset:
		return "Reset timer for \"" + c.TaskName + "\" to 00:00?"
	case ConfirmRemove:
		return "Delete \"" + c.TaskName + "\" permanently?"
	}
	return ""
}
