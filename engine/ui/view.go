package ui

// Axis selects a View's main layout direction.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// View is the flex container: children stack along the axis, separated by
// Gap; expand-mode children share whatever space fit-mode children leave.
type View struct {
	Common[*View]
	axis Axis
	gap  float32
}

func NewView() *View {
	v := &View{}
	v.Common = NewCommon(v)
	return v
}

func (v *View) Gap(g float32) *View { v.gap = g; return v }
func (v *View) Row() *View          { v.axis = Horizontal; return v }
func (v *View) Column() *View       { v.axis = Vertical; return v }

func (v *View) Layout(ctx *Context, constraints Constraints) LayoutResult {
	b := &v.base
	maxW := resolveConstraint(constraints.Max[0])
	maxH := resolveConstraint(constraints.Max[1])

	innerMaxW := maxW - b.padding[0] - b.padding[2]
	innerMaxH := maxH - b.padding[1] - b.padding[3]
	if innerMaxW < 0 {
		innerMaxW = 0
	}
	if innerMaxH < 0 {
		innerMaxH = 0
	}

	mainIdx, crossIdx := 0, 1
	innerMain, innerCross := innerMaxW, innerMaxH
	if v.axis == Vertical {
		mainIdx, crossIdx = 1, 0
		innerMain, innerCross = innerMaxH, innerMaxW
	}

	// First pass: size the fit/fixed children, count the expanders.
	used := float32(0)
	expanders := 0
	for _, child := range b.children {
		cn := child.Node()
		mode := cn.widthMod
		if v.axis == Vertical {
			mode = cn.heightMod
		}
		if mode == SizeModeExpand {
			expanders++
			continue
		}
		limit := [2]float32{}
		limit[mainIdx] = innerMain - used
		limit[crossIdx] = innerCross
		res := child.Layout(ctx, Constraints{Max: limit})
		sw, sh := res.Size[0], res.Size[1]
		if v.axis == Vertical {
			used += sh
		} else {
			used += sw
		}
	}
	if n := len(b.children); n > 1 {
		used += v.gap * float32(n-1)
	}

	// Second pass: split the remainder among the expanders.
	if expanders > 0 {
		share := (innerMain - used) / float32(expanders)
		if share < 0 {
			share = 0
		}
		for _, child := range b.children {
			cn := child.Node()
			mode := cn.widthMod
			if v.axis == Vertical {
				mode = cn.heightMod
			}
			if mode != SizeModeExpand {
				continue
			}
			limit := [2]float32{}
			limit[mainIdx] = share
			limit[crossIdx] = innerCross
			child.Layout(ctx, Constraints{Max: limit})
			used += share
		}
	}

	// Place the children along the axis, relative to this view's content
	// origin. Build absolutizes the tree once every ancestor is placed.
	px, py := b.padding[0], b.padding[1]
	curMain := float32(0)
	contentCross := float32(0)
	for _, child := range b.children {
		cn := child.Node()
		cw, ch := cn.Size()
		if v.axis == Vertical {
			cn.SetPos(px, py+curMain)
			curMain += ch + v.gap
			contentCross = maxf(contentCross, cw)
		} else {
			cn.SetPos(px+curMain, py)
			curMain += cw + v.gap
			contentCross = maxf(contentCross, ch)
		}
	}

	contentMain := used
	var contentW, contentH float32
	if v.axis == Vertical {
		contentW, contentH = contentCross, contentMain
	} else {
		contentW, contentH = contentMain, contentCross
	}
	w := b.resolveAxis(b.widthMod, b.widthVal,
		contentW+b.padding[0]+b.padding[2], constraints.Min[0], constraints.Max[0])
	h := b.resolveAxis(b.heightMod, b.heightVal,
		contentH+b.padding[1]+b.padding[3], constraints.Min[1], constraints.Max[1])
	b.SetSize(w, h)
	return LayoutResult{Size: [2]float32{w, h}}
}

// OnEvent forwards to the children front-to-back (last drawn gets first
// pick) and stops at the first capture.
func (v *View) OnEvent(ctx *Context, ev Event) Status {
	for i := len(v.base.children) - 1; i >= 0; i-- {
		if v.base.children[i].OnEvent(ctx, ev) == Captured {
			return Captured
		}
	}
	return Ignored
}

func (v *View) Draw(ctx *Context) {
	b := &v.base
	if b.color[3] > 0 {
		x, y := b.Pos()
		w, h := b.Size()
		ctx.Renderer.FillQuad(x, y, w, h, b.color)
	}
	for _, child := range b.children {
		child.Draw(ctx)
	}
}
