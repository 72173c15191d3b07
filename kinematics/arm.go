package kinematics

import (
	"gonum.org/v1/gonum/floats"

	"github.com/armsim/armkin/spatialmath"
	"github.com/armsim/armkin/utils"
)

type armMode uint8

const (
	simpleMode armMode = iota
	dhMode
)

// An Arm is a serial chain of joints in one of two modes: Simple arms hold
// ordered planar link lengths, DH arms hold ordered DHParameter records.
// The mode and the link/DH geometry are fixed for the arm's lifetime;
// reconstruct the arm to change them. Only the joint values mutate.
//
// An Arm is not safe for concurrent use; confine it to one logical owner
// during any mutate-then-compute sequence.
type Arm struct {
	name        string
	mode        armMode
	linkLengths []float64
	joints      []DHParameter
	values      []float64
}

// NewSimpleArm returns a planar arm with the given ordered link lengths,
// one revolute joint per link, all joint angles zero.
func NewSimpleArm(name string, linkLengths []float64) *Arm {
	lengths := make([]float64, len(linkLengths))
	copy(lengths, linkLengths)
	return &Arm{
		name:        name,
		mode:        simpleMode,
		linkLengths: lengths,
		values:      make([]float64, len(lengths)),
	}
}

// NewDHArm returns an arm described by the given ordered DH parameter
// records, all joint values zero. It fails with an invalid-joint-kind error
// if any record's Kind is outside the supported set, in which case no arm
// is created.
func NewDHArm(name string, dhParams []DHParameter) (*Arm, error) {
	joints := make([]DHParameter, len(dhParams))
	copy(joints, dhParams)
	for _, p := range joints {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}
	return &Arm{
		name:   name,
		mode:   dhMode,
		joints: joints,
		values: make([]float64, len(joints)),
	}, nil
}

// Name returns the name of the arm.
func (a *Arm) Name() string {
	return a.name
}

// DoF returns the arm's degrees of freedom, fixed at construction.
func (a *Arm) DoF() int {
	return len(a.values)
}

// SetJointValues replaces the variable quantity of every joint in order:
// radians for revolute joints, length units for prismatic. If len(values)
// does not match DoF it fails with a dimension-mismatch error and the arm's
// prior state is left unchanged. Values are copied in, so the caller may
// reuse the slice.
func (a *Arm) SetJointValues(values []float64) error {
	if len(values) != len(a.values) {
		return NewDimensionMismatchError(len(values), len(a.values))
	}
	copy(a.values, values)
	return nil
}

// SetJointAngles is a convenience for two-joint planar arms, setting the
// shoulder and elbow angles in radians. It is a thin alias over
// SetJointValues and fails on arms that are not 2-DoF Simple arms.
func (a *Arm) SetJointAngles(shoulder, elbow float64) error {
	if a.mode != simpleMode || a.DoF() != 2 {
		return NewJointAnglesUnsupportedError()
	}
	return a.SetJointValues([]float64{shoulder, elbow})
}

// JointValues returns a copy of the arm's current joint values.
func (a *Arm) JointValues() []float64 {
	values := make([]float64, len(a.values))
	copy(values, a.values)
	return values
}

// jointTransform derives the local transform of joint i from the arm's mode
// and current values. Simple mode is a planar rotation about Z followed by
// extension along local X, which keeps Z = 0 for the whole chain.
func (a *Arm) jointTransform(i int) spatialmath.Transform {
	if a.mode == dhMode {
		return a.joints[i].Transform(a.values[i])
	}
	return spatialmath.NewRotationZ(a.values[i]).
		Compose(spatialmath.NewTranslation(a.linkLengths[i], 0, 0))
}

// AlmostEquals returns whether the other arm has the same mode, the same
// geometry, and joint values equal within floating point imprecision.
func (a *Arm) AlmostEquals(other *Arm) bool {
	const epsilon = 1e-8
	if a.mode != other.mode || a.DoF() != other.DoF() {
		return false
	}
	if !floats.EqualApprox(a.values, other.values, epsilon) {
		return false
	}
	switch a.mode {
	case simpleMode:
		return floats.EqualApprox(a.linkLengths, other.linkLengths, epsilon)
	default:
		for i, p := range a.joints {
			q := other.joints[i]
			if p.Kind != q.Kind ||
				!utils.Float64AlmostEqual(p.A, q.A, epsilon) ||
				!utils.Float64AlmostEqual(p.Alpha, q.Alpha, epsilon) ||
				!utils.Float64AlmostEqual(p.D, q.D, epsilon) ||
				!utils.Float64AlmostEqual(p.Theta, q.Theta, epsilon) ||
				!utils.Float64AlmostEqual(p.Offset, q.Offset, epsilon) {
				return false
			}
		}
		return true
	}
}
