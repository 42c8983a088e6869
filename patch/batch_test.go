package patch

import (
	"testing"

	swen "github.com/mirror-shades/swen"
)

func buildApp(id string) *swen.App {
	child := swen.NewRectNode(2, "child", swen.Vector{}, swen.Vector{}, swen.Vector{X: 1, Y: 1}, nil, 0)
	root := swen.NewRectNode(1, "root", swen.Vector{}, swen.Vector{}, swen.Vector{X: 10, Y: 10}, nil, 0)
	root.SetChildren([]swen.Node{child})
	return swen.NewApp(id, swen.Vector{X: 10, Y: 10}, swen.Vector{}, swen.Color{}, []swen.Node{root})
}

func TestApplierAcceptsValidOp(t *testing.T) {
	app := buildApp("term")
	reg := NewRegistry([]*swen.App{app})
	applier := NewApplier(reg, ApplierConfig{})

	result := applier.Apply([]Op{
		SetTextOp{opBase: opBase{App: "term", Node: 2}, Body: "hello"},
	}, "term")

	if len(result.Applied) != 1 {
		t.Fatalf("applied = %d, want 1", len(result.Applied))
	}
	if len(result.Rejected) != 0 {
		t.Fatalf("rejected = %v, want none", result.Rejected)
	}
}

func TestApplierRejectsCrossAppMutation(t *testing.T) {
	app := buildApp("term")
	reg := NewRegistry([]*swen.App{app})
	applier := NewApplier(reg, ApplierConfig{})

	result := applier.Apply([]Op{
		SetTextOp{opBase: opBase{App: "other-app", Node: 2}, Body: "hello"},
	}, "term")

	if len(result.Rejected) != 1 || result.Rejected[0].Reason != ReasonCrossAppMutation {
		t.Fatalf("got %v, want one CrossAppMutation rejection", result.Rejected)
	}
}

func TestApplierRejectsUnknownNodeID(t *testing.T) {
	app := buildApp("term")
	reg := NewRegistry([]*swen.App{app})
	applier := NewApplier(reg, ApplierConfig{})

	result := applier.Apply([]Op{
		SetTextOp{opBase: opBase{App: "term", Node: 999}, Body: "hello"},
	}, "term")

	if len(result.Rejected) != 1 || result.Rejected[0].Reason != ReasonUnknownNodeID {
		t.Fatalf("got %v, want one UnknownNodeID rejection", result.Rejected)
	}
}

func TestApplierRejectsStructuralCycle(t *testing.T) {
	app := buildApp("term")
	reg := NewRegistry([]*swen.App{app})
	applier := NewApplier(reg, ApplierConfig{})

	// root (id 1) is the target parent; a "child" subtree containing the
	// root itself would create a cycle.
	rootNode, _ := reg.findNode("term", 1)
	cyclicChild := swen.NewRectNode(3, "cyclic", swen.Vector{}, swen.Vector{}, swen.Vector{X: 1, Y: 1}, nil, 0)
	cyclicChild.SetChildren([]swen.Node{rootNode})

	result := applier.Apply([]Op{
		InsertChildOp{opBase: opBase{App: "term", Node: 1}, Child: cyclicChild, Index: 0},
	}, "term")

	if len(result.Rejected) != 1 || result.Rejected[0].Reason != ReasonStructuralCycle {
		t.Fatalf("got %v, want one StructuralCycle rejection", result.Rejected)
	}
}

func TestApplierContinuesAfterSoftFail(t *testing.T) {
	app := buildApp("term")
	reg := NewRegistry([]*swen.App{app})
	applier := NewApplier(reg, ApplierConfig{})

	result := applier.Apply([]Op{
		SetTextOp{opBase: opBase{App: "term", Node: 999}, Body: "bad"},  // rejected
		SetTextOp{opBase: opBase{App: "term", Node: 2}, Body: "good"}, // still applied
	}, "term")

	if len(result.Applied) != 1 || len(result.Rejected) != 1 {
		t.Fatalf("applied=%d rejected=%d, want 1/1", len(result.Applied), len(result.Rejected))
	}
	if result.HardFailed {
		t.Error("HardFailed true, want false (threshold disabled)")
	}
}

func TestApplierHardFailEscalation(t *testing.T) {
	app := buildApp("term")
	reg := NewRegistry([]*swen.App{app})
	applier := NewApplier(reg, ApplierConfig{HardFailThreshold: 1})

	result := applier.Apply([]Op{
		SetTextOp{opBase: opBase{App: "term", Node: 999}, Body: "bad"},
		SetTextOp{opBase: opBase{App: "term", Node: 2}, Body: "never reached"},
	}, "term")

	if !result.HardFailed {
		t.Fatal("HardFailed = false, want true")
	}
	if len(result.Applied) != 0 {
		t.Errorf("applied = %d, want 0 (batch stopped at first violation)", len(result.Applied))
	}
}

func TestApplierAppLevelOps(t *testing.T) {
	app := buildApp("term")
	reg := NewRegistry([]*swen.App{app})
	applier := NewApplier(reg, ApplierConfig{})

	result := applier.Apply([]Op{
		ClearFocusOp{App: "term"},
		RequestCloseOp{App: "term"},
	}, "term")

	if len(result.Applied) != 2 {
		t.Fatalf("applied = %d, want 2", len(result.Applied))
	}
}
