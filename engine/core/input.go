package core

// Input tracks currently-held keys and the last cursor position.
type Input struct {
	keys           map[Key]bool
	mouseX, mouseY float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

// Modifiers computes the modifier bitmask from the currently-held keys.
func (in *Input) Modifiers() Mod {
	var m Mod
	if in.keys[KeyLeftShift] || in.keys[KeyRightShift] {
		m |= ModShift
	}
	if in.keys[KeyLeftControl] || in.keys[KeyRightControl] {
		m |= ModCtrl
	}
	if in.keys[KeyLeftAlt] || in.keys[KeyRightAlt] {
		m |= ModAlt
	}
	if in.keys[KeyLeftSuper] || in.keys[KeyRightSuper] {
		m |= ModSuper
	}
	return m
}
