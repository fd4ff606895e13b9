// Package uibridge splices the retained-layout ui toolkit into the engine's
// fixed-tick update and render graph.
//
// Per tick: a translator drains the window's new events into a shared queue
// in the toolkit's vocabulary. During App.OnUpdate the host calls
// Context.Display for each UI session, which rebuilds that session's widget
// tree against its retained cache, replays the queued events, forwards the
// emitted messages onto the session's bus topic, and records the frame's
// draw primitives. A render node scheduled after the main scene pass then
// presents the recorded batch on top of the scene, compositing by blending
// without clearing.
package uibridge
