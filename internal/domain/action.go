package domain

type Action string

const (
	ActionGetPresence                Action = "getPresence"
	ActionSetPresence                Action = "setPresence"
	ActionClearPresence              Action = "clearPresence"
	ActionSetUserPreferredPresence   Action = "setUserPreferredPresence"
	ActionClearUserPreferredPresence Action = "clearUserPreferredPresence"
	ActionGetUser                    Action = "getUser"
)

// Actions lists every action the presence gateway knows about, in display order.
func Actions() []Action {
	return []Action{
		ActionGetPresence,
		ActionSetPresence,
		ActionClearPresence,
		ActionSetUserPreferredPresence,
		ActionClearUserPreferredPresence,
		ActionGetUser,
	}
}

func ParseAction(raw string) (Action, error) {
	for _, action := range Actions() {
		if string(action) == raw {
			return action, nil
		}
	}
	return "", &ValidationError{
		Fields:  []string{"action"},
		Message: "Unknown action: " + raw,
		Err:     ErrUnknownAction,
	}
}

// Mutates reports whether the action changes presence state.
func (a Action) Mutates() bool {
	switch a {
	case ActionGetPresence, ActionGetUser:
		return false
	default:
		return true
	}
}
