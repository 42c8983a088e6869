// Package swen is the compositor core of Swen, an experimental vector-UI
// compositor: apps declare their UI as a retained tree of nodes, the
// compositor owns the global scene, and a tile-based renderer turns the
// scene into GPU work.
//
// This package holds the scene-tree data model — hierarchical coordinates
// and stable node identities. The front end that builds a tree from `.swen`
// markup lives in [github.com/mirror-shades/swen/lexer] and
// [github.com/mirror-shades/swen/parser]; the lowering and tile scheduling
// stages live in [github.com/mirror-shades/swen/ir] and
// [github.com/mirror-shades/swen/tile]; the backend contract lives in
// [github.com/mirror-shades/swen/backend].
//
// # Pipeline
//
//	root, err := parser.Parse(source, parser.DefaultConfig())
//	buf := ir.NewIRBuffer(ir.DefaultMaxIRInstructions)
//	if err := ir.Lower(root.Desktop, buf, nil); err != nil { ... }
//	sched := tile.NewTileScheduler(tile.DefaultConfig())
//	sched.Reset(width, height)
//	snap, err := sched.Schedule(buf.Instructions(), buf.FrameNumber())
//
// # Scene tree
//
// Every drawable element is a [Node]: [RectNode], [TextNode], or
// [TransformNode]. The parser allocates nodes into a bounded [NodeArena]
// that it creates for each parse; there is no per-node heap freeing. See [Desktop] and [App] for the two places a node tree
// is rooted.
package swen
