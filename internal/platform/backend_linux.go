//go:build linux

package platform

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/arbortile/internal/x11"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay opens a fresh X11 connection. An empty display
// uses $DISPLAY.
func NewLinuxBackendFromDisplay(display string) (*LinuxBackend, error) {
	conn, err := x11.NewConnection(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// Displays returns all active displays with their work areas.
func (b *LinuxBackend) Displays() ([]Display, error) {
	monitors, err := b.conn.GetMonitors()
	if err != nil {
		return nil, err
	}
	displays := make([]Display, len(monitors))
	for i, mon := range monitors {
		usable := b.conn.WorkArea(mon)
		displays[i] = Display{
			ID:     mon.ID,
			Name:   mon.Name,
			Bounds: Rect{X: mon.X, Y: mon.Y, Width: mon.Width, Height: mon.Height},
			Usable: Rect{X: usable.X, Y: usable.Y, Width: usable.Width, Height: usable.Height},
		}
	}
	return displays, nil
}

// ActiveWindow returns the currently focused window.
func (b *LinuxBackend) ActiveWindow() (WindowID, error) {
	win, err := b.conn.GetActiveWindow()
	if err != nil {
		return 0, err
	}
	return WindowID(win), nil
}

// ListWindows returns the manageable top-level windows with the display each
// one occupies.
func (b *LinuxBackend) ListWindows() ([]Window, error) {
	clients, err := b.conn.ClientList()
	if err != nil {
		return nil, err
	}
	monitors, err := b.conn.GetMonitors()
	if err != nil {
		return nil, err
	}

	var windows []Window
	for _, id := range clients {
		if !b.conn.IsNormalWindow(id) && !b.conn.IsPopup(id) {
			continue
		}
		display := b.conn.MonitorForWindow(monitors, id)
		if display < 0 {
			display = 0
		}
		windows = append(windows, Window{
			ID:      WindowID(id),
			Title:   b.conn.WindowTitle(id),
			Display: display,
			Popup:   b.conn.IsPopup(id),
		})
	}
	return windows, nil
}

// MoveResize moves and resizes a window.
func (b *LinuxBackend) MoveResize(windowID WindowID, bounds Rect) error {
	return b.conn.MoveResizeWindow(xproto.Window(windowID), bounds.X, bounds.Y, bounds.Width, bounds.Height)
}

// Focus gives the window the input focus.
func (b *LinuxBackend) Focus(windowID WindowID) error {
	return b.conn.FocusWindow(xproto.Window(windowID))
}
