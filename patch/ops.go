// Package patch implements the validation side of the patch-op contract
// apps use to mutate their own subtree over IPC (§4.7). The wire codec
// itself is out of scope; this package validates already-decoded ops
// against the retained scene tree and sorts them into accepted and
// rejected. It does not mutate the tree.
package patch

import swen "github.com/mirror-shades/swen"

// OpKind enumerates every patch-op category named in §4.7.
type OpKind string

const (
	OpSetText          OpKind = "SetText"
	OpSetBackground    OpKind = "SetBackground"
	OpSetPosition      OpKind = "SetPosition"
	OpSetSize          OpKind = "SetSize"
	OpSetTransform     OpKind = "SetTransform"
	OpSetVisibility    OpKind = "SetVisibility"
	OpSetEnabled       OpKind = "SetEnabled"
	OpSetValue         OpKind = "SetValue"
	OpSetProperty      OpKind = "SetProperty"
	OpInsertChild      OpKind = "InsertChild"
	OpRemoveNode       OpKind = "RemoveNode"
	OpReplaceChildren  OpKind = "ReplaceChildren"
	OpRequestFocus     OpKind = "RequestFocus"
	OpClearFocus       OpKind = "ClearFocus"
	OpRequestClose     OpKind = "RequestClose"
)

// Op is any patch operation an app may submit. AppID names the app the op
// targets (for the cross-app-mutation check, invariant 1); TargetNode is
// the node it addresses, or 0 for app-level ops (ClearFocus, RequestClose).
type Op interface {
	Kind() OpKind
	AppID() string
	TargetNode() swen.NodeId
}

type opBase struct {
	App  string
	Node swen.NodeId
}

func (b opBase) AppID() string         { return b.App }
func (b opBase) TargetNode() swen.NodeId { return b.Node }

// SetTextOp replaces a Text node's body.
type SetTextOp struct {
	opBase
	Body string
}

func (SetTextOp) Kind() OpKind { return OpSetText }

// SetBackgroundOp replaces a Rect node's background (nil clears it).
type SetBackgroundOp struct {
	opBase
	Background *swen.Color
}

func (SetBackgroundOp) Kind() OpKind { return OpSetBackground }

// SetPositionOp replaces a node's declared position.
type SetPositionOp struct {
	opBase
	Position swen.Vector
}

func (SetPositionOp) Kind() OpKind { return OpSetPosition }

// SetSizeOp replaces a Rect node's size.
type SetSizeOp struct {
	opBase
	Size swen.Vector
}

func (SetSizeOp) Kind() OpKind { return OpSetSize }

// SetTransformOp replaces a Transform node's matrix (nil clears it).
type SetTransformOp struct {
	opBase
	Matrix *swen.Matrix
}

func (SetTransformOp) Kind() OpKind { return OpSetTransform }

// SetVisibilityOp toggles whether a node is lowered at all. The core node
// model has no visibility flag of its own (§3); this op is validated like
// any other and left for a host's node model extension to interpret.
type SetVisibilityOp struct {
	opBase
	Visible bool
}

func (SetVisibilityOp) Kind() OpKind { return OpSetVisibility }

// SetEnabledOp toggles input-eligibility for a node, mirroring
// SetVisibilityOp's host-extension scope.
type SetEnabledOp struct {
	opBase
	Enabled bool
}

func (SetEnabledOp) Kind() OpKind { return OpSetEnabled }

// SetValueOp carries an app-defined opaque value update (form inputs,
// sliders, etc.) for a node kind the core doesn't model directly.
type SetValueOp struct {
	opBase
	Value any
}

func (SetValueOp) Kind() OpKind { return OpSetValue }

// SetPropertyOp is the generic escape hatch for a named property update
// not covered by a dedicated op.
type SetPropertyOp struct {
	opBase
	Property string
	Value    any
}

func (SetPropertyOp) Kind() OpKind { return OpSetProperty }

// InsertChildOp inserts Child into Parent's children at Index.
type InsertChildOp struct {
	opBase // Node is the parent
	Child  swen.Node
	Index  int
}

func (InsertChildOp) Kind() OpKind { return OpInsertChild }

// RemoveNodeOp detaches a node from its parent.
type RemoveNodeOp struct {
	opBase
}

func (RemoveNodeOp) Kind() OpKind { return OpRemoveNode }

// ReplaceChildrenOp replaces a node's entire children list.
type ReplaceChildrenOp struct {
	opBase // Node is the parent
	Children []swen.Node
}

func (ReplaceChildrenOp) Kind() OpKind { return OpReplaceChildren }

// RequestFocusOp asks the host to focus TargetNode.
type RequestFocusOp struct {
	opBase
}

func (RequestFocusOp) Kind() OpKind { return OpRequestFocus }

// ClearFocusOp is app-level: it carries no target node.
type ClearFocusOp struct {
	App string
}

func (o ClearFocusOp) Kind() OpKind         { return OpClearFocus }
func (o ClearFocusOp) AppID() string        { return o.App }
func (o ClearFocusOp) TargetNode() swen.NodeId { return 0 }

// RequestCloseOp is app-level: it asks the host to close the app's
// top-level surface.
type RequestCloseOp struct {
	App string
}

func (o RequestCloseOp) Kind() OpKind         { return OpRequestClose }
func (o RequestCloseOp) AppID() string        { return o.App }
func (o RequestCloseOp) TargetNode() swen.NodeId { return 0 }
