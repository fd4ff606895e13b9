// Package ui is a retained-layout widget toolkit. Callers rebuild the
// widget tree every frame; per-widget interaction state (hover, press)
// survives between frames inside an opaque Cache that the caller moves in
// and out of each transient Interface.
//
// The package never touches the GPU directly: drawing records primitives
// into a Renderer, and a later Present call replays them through the
// batched 2D renderer. All coordinates are logical pixels, top-left
// origin, Y down.
package ui
