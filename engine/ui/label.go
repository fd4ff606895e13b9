package ui

import "github.com/hubastard/canopy/engine/colors"

// Label draws a single run of text. It never reacts to input.
type Label struct {
	Common[*Label]
	text     string
	textSize float32
	hasColor bool
}

func NewLabel(text string) *Label {
	l := &Label{text: text}
	l.Common = NewCommon(l)
	return l
}

func (l *Label) Text(s string) *Label { l.text = s; return l }

func (l *Label) TextSize(size float32) *Label { l.textSize = size; return l }

// TextColor overrides the frame style's text color for this label.
func (l *Label) TextColor(c colors.Color) *Label {
	l.base.SetColor(c)
	l.hasColor = true
	return l
}

func (l *Label) Layout(ctx *Context, constraints Constraints) LayoutResult {
	b := &l.base
	tw, th := ctx.Renderer.Measure(l.text, l.textSize)
	w := b.resolveAxis(b.widthMod, b.widthVal,
		tw+b.padding[0]+b.padding[2], constraints.Min[0], constraints.Max[0])
	h := b.resolveAxis(b.heightMod, b.heightVal,
		th+b.padding[1]+b.padding[3], constraints.Min[1], constraints.Max[1])
	b.SetSize(w, h)
	return LayoutResult{Size: [2]float32{w, h}}
}

func (l *Label) OnEvent(ctx *Context, ev Event) Status { return Ignored }

func (l *Label) Draw(ctx *Context) {
	col := ctx.Style.TextColor
	if l.hasColor {
		col = l.base.color
	} else if col[3] <= 0 {
		col = ctx.Theme.Text
	}
	x, y := l.base.innerPosition()
	ctx.Renderer.DrawString(x, y, l.text, l.textSize, nil, col)
}
