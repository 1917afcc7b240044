package core

// Action is a semantic input, abstracted from physical key presses.
// Games react to actions; the platform decides which keys produce them.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - move cursor up
	ActionDown            // S, Down arrow - move cursor down
	ActionLeft            // A, Left arrow - move cursor left
	ActionRight           // D, Right arrow - move cursor right
	ActionConfirm         // Enter, Space - commit placement / select
	ActionBack            // B, Escape - back to menu
	ActionRestart         // R - restart after game over
	ActionQuit            // Q, Ctrl+C - exit
	ActionPause           // P - pause/unpause
	ActionSlot1           // 1 - pick first tray slot
	ActionSlot2           // 2 - pick second tray slot
	ActionSlot3           // 3 - pick third tray slot
	ActionNextSlot        // Tab - cycle to next non-empty slot
	ActionPrevSlot        // Shift+Tab - cycle backwards
)

var actionNames = map[Action]string{
	ActionNone:     "None",
	ActionUp:       "Up",
	ActionDown:     "Down",
	ActionLeft:     "Left",
	ActionRight:    "Right",
	ActionConfirm:  "Confirm",
	ActionBack:     "Back",
	ActionRestart:  "Restart",
	ActionQuit:     "Quit",
	ActionPause:    "Pause",
	ActionSlot1:    "Slot1",
	ActionSlot2:    "Slot2",
	ActionSlot3:    "Slot3",
	ActionNextSlot: "NextSlot",
	ActionPrevSlot: "PrevSlot",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// SlotIndex returns the tray index selected by a slot action, or -1.
func (a Action) SlotIndex() int {
	switch a {
	case ActionSlot1:
		return 0
	case ActionSlot2:
		return 1
	case ActionSlot3:
		return 2
	}
	return -1
}

// InputFrame is the set of actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
