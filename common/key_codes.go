package common

import "strings"

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87 // W key (ASCII)
	KeyA     = 65 // A key (ASCII)
	KeyS     = 83 // S key (ASCII)
	KeyD     = 68 // D key (ASCII)
	KeyQ     = 81 // Q key (ASCII)
	KeyE     = 69 // E key (ASCII)
	KeySpace = 32 // Spacebar (ASCII)

	KeyEsc   = 256 // Escape key (GLFW)
	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
	KeyDown  = 264 // Down arrow (GLFW)
	KeyUp    = 265 // Up arrow (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift  = 340 // Left Shift (GLFW)
	KeyRightShift = 344 // Right Shift (GLFW)
)

// keyNames maps the lower-case names accepted in configuration files to key codes.
var keyNames = map[string]uint32{
	"w":           KeyW,
	"a":           KeyA,
	"s":           KeyS,
	"d":           KeyD,
	"q":           KeyQ,
	"e":           KeyE,
	"space":       KeySpace,
	"escape":      KeyEsc,
	"right":       KeyRight,
	"left":        KeyLeft,
	"down":        KeyDown,
	"up":          KeyUp,
	"left_shift":  KeyLeftShift,
	"right_shift": KeyRightShift,
}

// KeyCode resolves a key name (case-insensitive, e.g. "W", "space", "up") to its GLFW key code.
// Any other single printable ASCII character resolves to its upper-case ASCII value, which is
// how GLFW encodes printable keys.
//
// Parameters:
//   - name: the key name to resolve
//
// Returns:
//   - uint32: the key code
//   - bool: false if the name is not a known key
func KeyCode(name string) (uint32, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if code, ok := keyNames[n]; ok {
		return code, true
	}
	if len(n) == 1 && n[0] > ' ' && n[0] < 0x7f {
		return uint32(strings.ToUpper(n)[0]), true
	}
	return 0, false
}
