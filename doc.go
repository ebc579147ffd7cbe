// Package planar performs Boolean set operations (fuse, cut, intersect) and
// constant-distance offsetting on closed 2D boundaries built from lines,
// circular and elliptical arcs, and Bezier curves.
//
// The package gets the topology right even when inputs touch, overlap, or
// share boundary runs exactly: two loops are cut into paired segments at
// their crossings and common sub-curves, segments are selected by containment
// against the other loop, and runs lying on both boundaries are resolved
// transitively from the nearest unambiguous decision. Offsets are built per
// curve with round, bevel or miter joins, then cleaned of self-intersections
// using a bounding-box broad phase and distance-based pruning.
//
// All decisions are made under fixed numeric tolerances; exact arithmetic is
// not attempted. Operations are synchronous and share no state, so
// independent calls can run concurrently.
package planar
