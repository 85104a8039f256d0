package window

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-cube/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultTitle is the title of the demo window.
	DefaultTitle = "Movable Cube Demo"
	// DefaultWidth is the requested client width in pixels.
	DefaultWidth = 1280
	// DefaultHeight is the requested client height in pixels.
	DefaultHeight = 720
)

// ErrNotInitialized is returned when operating on a window whose platform window is gone.
var ErrNotInitialized = errors.New("window is not initialized")

// keyAction is the platform independent state change of a key event.
type keyAction int

const (
	keyPress keyAction = iota
	keyRepeat
	keyRelease
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press and repeat events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetFocusCallback sets the callback for focus changes.
	//
	// Parameters:
	//   - callback: function receiving true when the window gains focus and false when it loses it
	SetFocusCallback(callback func(focused bool))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// PollEvents dispatches every pending event to the callbacks without blocking.
	//
	// Returns:
	//   - bool: true while the window is still running
	PollEvents() bool

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources. Later calls are no-ops.
	//
	// Returns:
	//   - error: ErrNotInitialized if there is no platform window to close
	Close() error

	// Title returns the window title.
	Title() string

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth is the maximum allowed window width during resize.
	maxWidth int

	// maxHeight is the maximum allowed window height during resize.
	maxHeight int

	// minWidth is the minimum allowed window width during resize.
	minWidth int

	// minHeight is the minimum allowed window height during resize.
	minHeight int

	// width is the current window client area width in pixels.
	width int

	// height is the current window client area height in pixels.
	height int

	// resizable controls whether the user can resize the window.
	resizable bool

	// closeRequested is set once Escape is pressed or Close is called.
	closeRequested bool

	// closed is set after the platform window has been destroyed.
	closed bool

	logger zerolog.Logger

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onResize  func(width, height int)
	onKeyDown func(keyCode uint32)
	onKeyUp   func(keyCode uint32)
	onFocus   func(focused bool)
}

var _ Window = &engineWindow{}

// newEngineWindow applies defaults then options without touching the platform.
func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		title:     DefaultTitle,
		maxWidth:  3840,
		maxHeight: 2160,
		minWidth:  320,
		minHeight: 200,
		width:     DefaultWidth,
		height:    DefaultHeight,
		resizable: true,
		logger:    log.Logger,
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

// NewWindow creates and shows a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
//   - error: an error if the platform window could not be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := newEngineWindow(options...)
	if w.width <= 0 || w.height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", w.width, w.height)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("failed to create platform window: %w", err)
	}
	w.logger.Debug().
		Str("title", w.title).
		Int("width", w.width).
		Int("height", w.height).
		Msg("window created")
	return w, nil
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetFocusCallback(callback func(focused bool)) {
	w.onFocus = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	if w.closed {
		return nil
	}
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) PollEvents() bool {
	if w.closed {
		return false
	}
	platformPollEvents(w)
	return w.IsRunning()
}

func (w *engineWindow) IsRunning() bool {
	return !w.closed && !w.closeRequested && platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	if w.closed {
		return nil
	}
	w.closeRequested = true
	if err := platformCloseWindow(w); err != nil {
		return err
	}
	w.closed = true
	return nil
}

func (w *engineWindow) Title() string {
	return w.title
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// handleKey routes a key event. Escape closes the window instead of reaching the callbacks.
func (w *engineWindow) handleKey(keyCode uint32, action keyAction) {
	if keyCode == common.KeyEsc {
		if action == keyPress {
			w.closeRequested = true
			platformRequestClose(w)
		}
		return
	}
	switch action {
	case keyPress, keyRepeat:
		if w.onKeyDown != nil {
			w.onKeyDown(keyCode)
		}
	case keyRelease:
		if w.onKeyUp != nil {
			w.onKeyUp(keyCode)
		}
	}
}

func (w *engineWindow) handleResize(width, height int) {
	w.width = width
	w.height = height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

func (w *engineWindow) handleFocus(focused bool) {
	if w.onFocus != nil {
		w.onFocus(focused)
	}
}
