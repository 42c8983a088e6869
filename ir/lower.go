package ir

import (
	swen "github.com/mirror-shades/swen"
)

// InternFunc assigns a backend-owned interning index to a text body longer
// than the inline threshold (§4.4 TextRef). A lowering call that never
// encounters a long body may pass nil.
type InternFunc func(string) uint32

// Lower lowers desktop into buf, starting a new frame (§4.4 lower_desktop).
// desktop.Nodes must already be root-filtered, as the parser guarantees.
func Lower(desktop *swen.Desktop, buf *IRBuffer, intern InternFunc) error {
	buf.NextFrame()
	for _, n := range desktop.Nodes {
		if err := lowerNode(n, buf, intern); err != nil {
			return err
		}
	}
	return nil
}

// lowerNode dispatches on the tagged-union Node kind (§3, §4.4). World
// coordinates are read directly from the node's parse-time-accumulated
// local_position + position (swen.World); invariant 2 guarantees this
// already equals the sum of every ancestor's position, so no separate
// running accumulator is threaded through the recursion (§8 property 4).
func lowerNode(n swen.Node, buf *IRBuffer, intern InternFunc) error {
	switch v := n.(type) {
	case *swen.RectNode:
		return lowerRect(v, buf, intern)
	case *swen.TextNode:
		return lowerText(v, buf, intern)
	case *swen.TransformNode:
		return lowerTransform(v, buf, intern)
	default:
		return nil
	}
}

func lowerRect(n *swen.RectNode, buf *IRBuffer, intern InternFunc) error {
	origin := swen.World(n)
	bounds := swen.Bounds{X: origin.X, Y: origin.Y, Width: n.Size.X, Height: n.Size.Y}
	if n.Background != nil {
		paint := swen.PaintKey{Color: *n.Background}
		if err := buf.DrawRect(n.NodeID(), bounds, paint, n.CornerRadius); err != nil {
			return err
		}
	}
	for _, child := range n.Children() {
		if err := lowerNode(child, buf, intern); err != nil {
			return err
		}
	}
	return nil
}

// textBoundsEstimate computes the documented placeholder bounds for a Text
// node pending font metrics (§4.4: "width = body.len * text_size / 2").
func textBoundsEstimate(origin swen.Vector, body string, textSize uint16) swen.Bounds {
	width := int32(len(body)) * int32(textSize) / 2
	return swen.Bounds{X: origin.X, Y: origin.Y, Width: width, Height: int32(textSize)}
}

func lowerText(n *swen.TextNode, buf *IRBuffer, intern InternFunc) error {
	origin := swen.World(n)
	bounds := textBoundsEstimate(origin, n.Body, n.TextSize)
	paint := swen.PaintKey{Color: n.Color}
	ref := NewTextRef(n.Body, intern)
	return buf.DrawText(n.NodeID(), bounds, ref, paint, n.TextSize)
}

func lowerTransform(n *swen.TransformNode, buf *IRBuffer, intern InternFunc) error {
	pushed := n.Matrix != nil
	if pushed {
		if err := buf.PushState(); err != nil {
			return err
		}
		if err := buf.SetTransform(*n.Matrix); err != nil {
			return err
		}
	}
	for _, child := range n.Children() {
		if err := lowerNode(child, buf, intern); err != nil {
			return err
		}
	}
	if pushed {
		if err := buf.PopState(); err != nil {
			return err
		}
	}
	return nil
}
