//go:build linux

package render

import (
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// hintApplier sets EWMH hints on the dashboard's X11 window so a
// chartkit overlay can stay out of the taskbar and pager. The connection
// and interned atoms are cached across calls.
type hintApplier struct {
	mu    sync.Mutex
	conn  *xgb.Conn
	atoms map[string]xproto.Atom
}

var globalHints = &hintApplier{atoms: make(map[string]xproto.Atom)}

// ApplyWindowHints sets _NET_WM_STATE_SKIP_TASKBAR and
// _NET_WM_STATE_SKIP_PAGER on the active window. It must run after the
// window exists, so call it once the game loop has started. Outside an
// X11 session it returns nil and does nothing.
func ApplyWindowHints(skipTaskbar, skipPager bool) error {
	if !skipTaskbar && !skipPager {
		return nil
	}
	return globalHints.apply(skipTaskbar, skipPager)
}

// CloseWindowHints releases the cached X11 connection.
func CloseWindowHints() {
	globalHints.mu.Lock()
	defer globalHints.mu.Unlock()
	if globalHints.conn != nil {
		globalHints.conn.Close()
		globalHints.conn = nil
	}
}

func (h *hintApplier) apply(skipTaskbar, skipPager bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conn == nil {
		conn, err := xgb.NewConn()
		if err != nil {
			// Not an X11 session; hints are best effort.
			return nil
		}
		h.conn = conn
	}

	window, err := h.activeWindow()
	if err != nil || window == xproto.WindowNone {
		return nil
	}

	var add []xproto.Atom
	if skipTaskbar {
		if atom, err := h.atom("_NET_WM_STATE_SKIP_TASKBAR"); err == nil {
			add = append(add, atom)
		}
	}
	if skipPager {
		if atom, err := h.atom("_NET_WM_STATE_SKIP_PAGER"); err == nil {
			add = append(add, atom)
		}
	}
	if len(add) == 0 {
		return nil
	}

	stateAtom, err := h.atom("_NET_WM_STATE")
	if err != nil {
		return nil
	}
	atomAtom, err := h.atom("ATOM")
	if err != nil {
		return nil
	}

	// Merge with the window's current state atoms, deduplicated.
	have := make(map[xproto.Atom]bool)
	for _, a := range h.windowState(window, stateAtom, atomAtom) {
		have[a] = true
	}
	for _, a := range add {
		have[a] = true
	}

	final := make([]xproto.Atom, 0, len(have))
	for a := range have {
		final = append(final, a)
	}

	data := make([]byte, len(final)*4)
	for i, a := range final {
		xgb.Put32(data[i*4:], uint32(a))
	}
	xproto.ChangeProperty(h.conn, xproto.PropModeReplace, window,
		stateAtom, atomAtom, 32, uint32(len(final)), data)
	return nil
}

func (h *hintApplier) atom(name string) (xproto.Atom, error) {
	if atom, ok := h.atoms[name]; ok {
		return atom, nil
	}
	reply, err := xproto.InternAtom(h.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	h.atoms[name] = reply.Atom
	return reply.Atom, nil
}

// activeWindow resolves the focused window, preferring the EWMH
// _NET_ACTIVE_WINDOW root property over the input focus.
func (h *hintApplier) activeWindow() (xproto.Window, error) {
	setup := xproto.Setup(h.conn)
	if len(setup.Roots) == 0 {
		return xproto.WindowNone, nil
	}
	root := setup.Roots[0].Root

	if activeAtom, err := h.atom("_NET_ACTIVE_WINDOW"); err == nil {
		reply, err := xproto.GetProperty(h.conn, false, root, activeAtom,
			xproto.AtomWindow, 0, 1).Reply()
		if err == nil && reply != nil && len(reply.Value) >= 4 {
			return xproto.Window(xgb.Get32(reply.Value)), nil
		}
	}

	focus, err := xproto.GetInputFocus(h.conn).Reply()
	if err != nil {
		return xproto.WindowNone, err
	}
	return focus.Focus, nil
}

func (h *hintApplier) windowState(window xproto.Window, stateAtom, atomAtom xproto.Atom) []xproto.Atom {
	reply, err := xproto.GetProperty(h.conn, false, window, stateAtom,
		atomAtom, 0, 256).Reply()
	if err != nil || reply == nil {
		return nil
	}
	atoms := make([]xproto.Atom, 0, len(reply.Value)/4)
	for i := 0; i+4 <= len(reply.Value); i += 4 {
		atoms = append(atoms, xproto.Atom(xgb.Get32(reply.Value[i:])))
	}
	return atoms
}
