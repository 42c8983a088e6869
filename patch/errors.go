package patch

import "fmt"

// RejectReason enumerates why an op was rejected (§4.7, §7 "Patch-op
// rejection").
type RejectReason string

const (
	ReasonCrossAppMutation RejectReason = "CrossAppMutation"
	ReasonUnknownNodeID    RejectReason = "UnknownNodeID"
	ReasonStructuralCycle  RejectReason = "StructuralCycle"
	ReasonUnknownApp       RejectReason = "UnknownApp"
)

// RejectedOp records one op the applier refused to apply, along with why.
type RejectedOp struct {
	Op     Op
	Reason RejectReason
	Msg    string
}

func (r RejectedOp) String() string {
	return fmt.Sprintf("swen: patch op %s rejected (%s): %s", r.Op.Kind(), r.Reason, r.Msg)
}
