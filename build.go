package swen

// NewRectNode constructs a Rect node (§3, §4.2). Background nil means the
// rect emits no draw_rect when lowered. Children should be attached with
// SetChildren once parsed, so each child's Parent() backlink is set
// consistently with AddChild-style ownership.
func NewRectNode(id NodeId, declaredID string, position, localPosition, size Vector, background *Color, cornerRadius uint16) *RectNode {
	return &RectNode{
		nodeBase: nodeBase{id: id, declaredID: declaredID, position: position, localPos: localPosition},
		Size:     size, Background: background, CornerRadius: cornerRadius,
	}
}

// SetChildren attaches children to n, root-filtered or not as the caller
// chooses, backlinking each child's Parent().
func (n *RectNode) SetChildren(children []Node) {
	n.children = children
	linkParents(n, children)
}

// NewTextNode constructs a Text node (§3, §4.2). Text nodes are always
// leaves.
func NewTextNode(id NodeId, declaredID, body string, color Color, position, localPosition Vector, textSize uint16) *TextNode {
	return &TextNode{
		nodeBase: nodeBase{id: id, declaredID: declaredID, position: position, localPos: localPosition},
		Body:     body, Color: color, TextSize: textSize,
	}
}

// NewTransformNode constructs a Transform node (§3, §4.2).
func NewTransformNode(id NodeId, declaredID string, position, localPosition Vector, matrix *Matrix) *TransformNode {
	return &TransformNode{
		nodeBase: nodeBase{id: id, declaredID: declaredID, position: position, localPos: localPosition},
		Matrix:   matrix,
	}
}

// SetChildren attaches children to n, backlinking each child's Parent().
func (n *TransformNode) SetChildren(children []Node) {
	n.children = children
	linkParents(n, children)
}

func linkParents(parent Node, children []Node) {
	for _, c := range children {
		c.setParent(parent)
	}
}

// NewApp constructs an App subtree root. It does not touch its children's
// Parent() backlinks (apps are the top of their own subtree; the compositor's patch
// validation keys off App.ID for cross-app mutation checks, not a Node
// parent pointer, so App intentionally isn't itself a Node).
func NewApp(id string, size, position Vector, background Color, children []Node) *App {
	return &App{ID: id, Size: size, Position: position, Background: background, Children: children}
}
