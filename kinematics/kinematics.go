package kinematics

import (
	"github.com/golang/geo/r3"

	"github.com/armsim/armkin/spatialmath"
)

// JointPosition is the world-space position of one frame origin in the
// chain. Index 0 is the arm base at the world origin; Index DoF is the
// end-effector. Produced fresh on every ForwardKinematics call.
type JointPosition struct {
	Index    int       `json:"index"`
	Position r3.Vector `json:"position"`
}

// ForwardKinematics computes the world-space position of every frame origin
// of the arm from its current joint values, returning DoF+1 positions, base
// through end-effector. Each joint's local transform is composed onto the
// running accumulated transform and the accumulated origin recorded. Every
// call recomputes the full chain; with single-digit DoF there is nothing
// worth caching.
//
// Joint values are taken as-is: out-of-range angles, negative lengths, and
// NaN/Inf all propagate into the positions rather than being trapped here.
func ForwardKinematics(a *Arm) []JointPosition {
	accumulated := spatialmath.NewZeroTransform()
	positions := make([]JointPosition, 0, a.DoF()+1)
	positions = append(positions, JointPosition{Index: 0, Position: accumulated.TransformPoint(r3.Vector{})})
	for i := 0; i < a.DoF(); i++ {
		accumulated = accumulated.Compose(a.jointTransform(i))
		positions = append(positions, JointPosition{Index: i + 1, Position: accumulated.Point()})
	}
	return positions
}

// EndEffectorPosition returns just the last entry of ForwardKinematics.
func EndEffectorPosition(a *Arm) r3.Vector {
	positions := ForwardKinematics(a)
	return positions[len(positions)-1].Position
}
