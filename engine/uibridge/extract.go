package uibridge

// Snapshot is the render-side copy of the bridge's per-frame state, taken
// once per frame by the splice node's update phase. DidDraw is true when at
// least one session displayed since the previous extraction; the viewport
// is the one those displays laid out against, so a resize arriving between
// update and render cannot skew the composite.
type Snapshot struct {
	Viewport Viewport
	DidDraw  bool
}
