// Package picking turns screen positions into scene object selections.
//
// # Overview
//
// Viewers forward clicks and cursor moves here. A screen position
// becomes a [Ray] through the camera, the ray is intersected with the
// scene's triangles, and the nearest hit actor is selected or
// hovered:
//
//   - [RayFromScreen]: camera ray through a pixel
//   - [HitTest]: nearest visible actor along a ray
//   - [Picker]: toggling selection state with color feedback
//
// # Selection semantics
//
// Picking an actor recolors it with the picked color and records it;
// picking it again restores its original color and forgets it. The
// picked set is keyed by actor name and preserved in pick order, which
// is the order callers get back from [Picker.Picked].
package picking
