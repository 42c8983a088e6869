package patch

import "github.com/mirror-shades/swen/swenlog"

// ApplierConfig configures escalation from soft-fail to hard-fail (§4.7
// invariant 5, §7: "Hard-fail escalates to session termination on
// repeat/severe violation").
type ApplierConfig struct {
	// HardFailThreshold is the number of rejected ops in one batch after
	// which the applier stops processing and reports HardFailed. Zero
	// disables escalation (every violation is soft-failed).
	HardFailThreshold int
}

// BatchResult summarizes what happened when a batch was applied (§4.7
// invariant 4: "applied atomically... in declared order" — here
// "atomically" means each op either fully applies or is rejected outright,
// never partially; the batch as a whole continues past a soft-failed op
// per invariant 5's default policy).
type BatchResult struct {
	Applied    []Op
	Rejected   []RejectedOp
	HardFailed bool
}

// Applier validates patch batches against a Registry; ops that pass are
// reported in BatchResult.Applied for the caller to carry out.
type Applier struct {
	registry *Registry
	cfg      ApplierConfig
}

// NewApplier creates an Applier over registry with cfg escalation policy.
func NewApplier(registry *Registry, cfg ApplierConfig) *Applier {
	return &Applier{registry: registry, cfg: cfg}
}

// Apply validates batch in declared order, listing each op under Applied
// or Rejected; it does not mutate the scene tree. originApp is the
// app the batch was received from; any op whose AppID() differs is
// rejected as a cross-app mutation (§4.7 invariant 1) regardless of
// whether the target node exists.
func (a *Applier) Apply(batch []Op, originApp string) BatchResult {
	var result BatchResult
	for _, op := range batch {
		if reason, msg, ok := a.validate(op, originApp); !ok {
			rejected := RejectedOp{Op: op, Reason: reason, Msg: msg}
			result.Rejected = append(result.Rejected, rejected)
			swenlog.Warnf("%s", rejected.String())
			if a.cfg.HardFailThreshold > 0 && len(result.Rejected) >= a.cfg.HardFailThreshold {
				result.HardFailed = true
				return result
			}
			continue
		}
		result.Applied = append(result.Applied, op)
	}
	return result
}

// validate enforces invariants 1-3 (§4.7). It does not mutate the scene
// tree: applying an accepted op's effect is the caller's responsibility
// (the core exposes validation hooks, not a mutation engine, per §4.7's
// framing as "the core exposes validation hooks rather than a wire codec").
func (a *Applier) validate(op Op, originApp string) (RejectReason, string, bool) {
	if op.AppID() != originApp {
		return ReasonCrossAppMutation, "op app " + op.AppID() + " does not match origin app " + originApp, false
	}
	if _, ok := a.registry.App(op.AppID()); !ok {
		return ReasonUnknownApp, "app " + op.AppID() + " is not registered", false
	}

	// App-level ops (ClearFocus, RequestClose) carry no target node.
	if op.Kind() == OpClearFocus || op.Kind() == OpRequestClose {
		return "", "", true
	}

	target, ok := a.registry.findNode(op.AppID(), op.TargetNode())
	if !ok {
		return ReasonUnknownNodeID, "no node with that id in app's subtree", false
	}

	switch v := op.(type) {
	case InsertChildOp:
		if containsNodeID(v.Child, target.NodeID()) {
			return ReasonStructuralCycle, "inserted subtree contains its own future parent", false
		}
	case ReplaceChildrenOp:
		for _, child := range v.Children {
			if containsNodeID(child, target.NodeID()) {
				return ReasonStructuralCycle, "replacement subtree contains its own future parent", false
			}
		}
	}
	return "", "", true
}
