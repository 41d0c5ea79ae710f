package graphics

// Key is a window-system independent key code. Each window back end
// translates its native codes into these.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	Key1
	Key2
	Key3
	Key4
	KeyG
	KeyI
	KeyO
	KeyR
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

var keyNames = map[Key]string{
	KeyEscape: "escape",
	Key1:      "1",
	Key2:      "2",
	Key3:      "3",
	Key4:      "4",
	KeyG:      "g",
	KeyI:      "i",
	KeyO:      "o",
	KeyR:      "r",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyUp:     "up",
	KeyDown:   "down",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// KeyEvent is one key press. Repeat is set for presses generated by the OS
// while the key is held down.
type KeyEvent struct {
	Key    Key
	Repeat bool
}
