package input

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-cube/common"
)

// Action is a logical input action, decoupled from any platform key encoding.
// Actions are resolved to platform key codes through Bindings at the tracker boundary.
type Action int

const (
	// ActionMoveForward moves the character along its forward vector.
	ActionMoveForward Action = iota

	// ActionMoveBackward moves the character against its forward vector.
	ActionMoveBackward

	// ActionStrafeLeft moves the character against its right vector.
	ActionStrafeLeft

	// ActionStrafeRight moves the character along its right vector.
	ActionStrafeRight

	// ActionMoveUp moves the character up the world Y axis.
	ActionMoveUp

	// ActionMoveDown moves the character down the world Y axis.
	ActionMoveDown

	// ActionRotate increases the character's yaw rotation.
	ActionRotate

	actionCount
)

var actionNames = [actionCount]string{
	ActionMoveForward:  "move_forward",
	ActionMoveBackward: "move_backward",
	ActionStrafeLeft:   "strafe_left",
	ActionStrafeRight:  "strafe_right",
	ActionMoveUp:       "move_up",
	ActionMoveDown:     "move_down",
	ActionRotate:       "rotate",
}

// Actions returns every defined action in declaration order.
//
// Returns:
//   - []Action: all actions
func Actions() []Action {
	all := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		all = append(all, a)
	}
	return all
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction resolves an action from its configuration name (e.g. "move_forward").
//
// Parameters:
//   - name: the action name, case-insensitive
//
// Returns:
//   - Action: the parsed action
//   - error: an error if the name does not match any action
func ParseAction(name string) (Action, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for a, an := range actionNames {
		if an == n {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown input action %q", name)
}

// Bindings maps each logical action to the platform key code that triggers it.
type Bindings map[Action]uint32

// DefaultBindings returns the default keyboard layout:
// W/S forward and backward, A/D strafe, Up/Down arrows vertical movement, Space rotates.
//
// Returns:
//   - Bindings: a fresh map of the default bindings
func DefaultBindings() Bindings {
	return Bindings{
		ActionMoveForward:  common.KeyW,
		ActionMoveBackward: common.KeyS,
		ActionStrafeLeft:   common.KeyA,
		ActionStrafeRight:  common.KeyD,
		ActionMoveUp:       common.KeyUp,
		ActionMoveDown:     common.KeyDown,
		ActionRotate:       common.KeySpace,
	}
}

// ParseBindings converts a map of action names to key names into Bindings, starting from
// DefaultBindings so that unspecified actions keep their default key.
//
// Parameters:
//   - named: action name to key name, e.g. {"rotate": "R"}
//
// Returns:
//   - Bindings: the resolved bindings
//   - error: an error naming the first unknown action or key
func ParseBindings(named map[string]string) (Bindings, error) {
	b := DefaultBindings()
	for actionName, keyName := range named {
		a, err := ParseAction(actionName)
		if err != nil {
			return nil, err
		}
		code, ok := common.KeyCode(keyName)
		if !ok {
			return nil, fmt.Errorf("unknown key %q for action %s", keyName, a)
		}
		b[a] = code
	}
	return b, nil
}
