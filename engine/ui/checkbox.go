package ui

// Checkbox is a toggle box with a trailing label. Checked state lives with
// the host; the widget only reports toggles through OnToggle.
type Checkbox struct {
	Common[*Checkbox]
	label    string
	textSize float32
	checked  bool
	onToggle func(checked bool) any
}

func NewCheckbox(label string, checked bool) *Checkbox {
	c := &Checkbox{label: label, checked: checked}
	c.Common = NewCommon(c)
	return c
}

// OnToggle sets the message factory invoked with the new checked state.
func (c *Checkbox) OnToggle(fn func(checked bool) any) *Checkbox {
	c.onToggle = fn
	return c
}

func (c *Checkbox) TextSize(size float32) *Checkbox { c.textSize = size; return c }

func (c *Checkbox) boxSize(ctx *Context) float32 {
	_, th := ctx.Renderer.Measure("x", c.textSize)
	if th <= 0 {
		th = 16
	}
	return th
}

const checkboxGap = 8

func (c *Checkbox) Layout(ctx *Context, constraints Constraints) LayoutResult {
	n := &c.base
	box := c.boxSize(ctx)
	tw, th := ctx.Renderer.Measure(c.label, c.textSize)
	contentW := box + checkboxGap + tw
	contentH := maxf(box, th)
	w := n.resolveAxis(n.widthMod, n.widthVal,
		contentW+n.padding[0]+n.padding[2], constraints.Min[0], constraints.Max[0])
	h := n.resolveAxis(n.heightMod, n.heightVal,
		contentH+n.padding[1]+n.padding[3], constraints.Min[1], constraints.Max[1])
	n.SetSize(w, h)
	return LayoutResult{Size: [2]float32{w, h}}
}

func (c *Checkbox) toggle(ctx *Context) Status {
	if c.onToggle != nil {
		ctx.Emit(c.onToggle(!c.checked))
	}
	return Captured
}

func (c *Checkbox) OnEvent(ctx *Context, ev Event) Status {
	id := c.base.id
	st := ctx.State(id)
	over := c.base.containsCursor(ctx.Cursor)

	switch e := ev.(type) {
	case CursorMoved, FingerMoved:
		if st.Hot != over {
			st.Hot = over
			ctx.SetState(id, st)
		}
	case ButtonPressed:
		if e.Button == ButtonLeft && over {
			st.Active = true
			ctx.SetState(id, st)
			return Captured
		}
	case FingerPressed:
		if c.base.contains(e.X, e.Y) {
			st.Active = true
			ctx.SetState(id, st)
			return Captured
		}
	case ButtonReleased:
		if e.Button == ButtonLeft && st.Active {
			st.Active = false
			ctx.SetState(id, st)
			if over {
				return c.toggle(ctx)
			}
		}
	case FingerLifted:
		if st.Active {
			st.Active = false
			ctx.SetState(id, st)
			if c.base.contains(e.X, e.Y) {
				return c.toggle(ctx)
			}
		}
	}
	return Ignored
}

func (c *Checkbox) Draw(ctx *Context) {
	n := &c.base
	st := ctx.State(n.id)
	box := c.boxSize(ctx)
	x, y := n.innerPosition()

	frame := ctx.Theme.Surface
	if st.Hot {
		frame = frame.Scale(1.2)
	}
	ctx.Renderer.FillQuad(x, y, box, box, frame)
	if c.checked {
		inset := box * 0.25
		ctx.Renderer.FillQuad(x+inset, y+inset, box-2*inset, box-2*inset, ctx.Theme.Accent)
	}

	col := ctx.Style.TextColor
	if col[3] <= 0 {
		col = ctx.Theme.Text
	}
	ctx.Renderer.DrawString(x+box+checkboxGap, y, c.label, c.textSize, nil, col)
}
