package ui

// Button is a press target. It keys its hot/active state by ID in the
// retained cache, so the press-release pair survives the rebuild between
// frames. The OnPress message is emitted when a press that started inside
// the button is released inside it.
type Button struct {
	Common[*Button]
	label    string
	textSize float32
	onPress  any
}

func NewButton(label string) *Button {
	b := &Button{label: label}
	b.Common = NewCommon(b)
	b.base.SetPadding(12, 6, 12, 6)
	return b
}

func (b *Button) Label(s string) *Button { b.label = s; return b }

func (b *Button) TextSize(size float32) *Button { b.textSize = size; return b }

// OnPress sets the message emitted on a completed click.
func (b *Button) OnPress(msg any) *Button { b.onPress = msg; return b }

func (b *Button) Layout(ctx *Context, constraints Constraints) LayoutResult {
	n := &b.base
	tw, th := ctx.Renderer.Measure(b.label, b.textSize)
	w := n.resolveAxis(n.widthMod, n.widthVal,
		tw+n.padding[0]+n.padding[2], constraints.Min[0], constraints.Max[0])
	h := n.resolveAxis(n.heightMod, n.heightVal,
		th+n.padding[1]+n.padding[3], constraints.Min[1], constraints.Max[1])
	n.SetSize(w, h)
	return LayoutResult{Size: [2]float32{w, h}}
}

func (b *Button) OnEvent(ctx *Context, ev Event) Status {
	id := b.base.id
	st := ctx.State(id)
	over := b.base.containsCursor(ctx.Cursor)

	switch e := ev.(type) {
	case CursorMoved, FingerMoved:
		if st.Hot != over {
			st.Hot = over
			ctx.SetState(id, st)
		}
	case CursorLeft:
		if st.Hot {
			st.Hot = false
			ctx.SetState(id, st)
		}
	case ButtonPressed:
		if e.Button == ButtonLeft && over {
			st.Hot = true
			st.Active = true
			ctx.SetState(id, st)
			return Captured
		}
	case FingerPressed:
		if b.base.contains(e.X, e.Y) {
			st.Hot = true
			st.Active = true
			ctx.SetState(id, st)
			return Captured
		}
	case ButtonReleased:
		if e.Button == ButtonLeft && st.Active {
			st.Active = false
			ctx.SetState(id, st)
			if over {
				ctx.Emit(b.onPress)
				return Captured
			}
		}
	case FingerLifted:
		if st.Active {
			st.Active = false
			ctx.SetState(id, st)
			if b.base.contains(e.X, e.Y) {
				ctx.Emit(b.onPress)
				return Captured
			}
		}
	}
	return Ignored
}

func (b *Button) Draw(ctx *Context) {
	n := &b.base
	st := ctx.State(n.id)
	fill := ctx.Theme.Accent
	switch {
	case st.Active:
		fill = fill.Scale(0.75)
	case st.Hot:
		fill = fill.Scale(1.15)
	}
	x, y := n.Pos()
	w, h := n.Size()
	ctx.Renderer.FillQuad(x, y, w, h, fill)
	tx, ty := n.innerPosition()
	col := ctx.Style.TextColor
	if col[3] <= 0 {
		col = ctx.Theme.Text
	}
	ctx.Renderer.DrawString(tx, ty, b.label, b.textSize, nil, col)
}
