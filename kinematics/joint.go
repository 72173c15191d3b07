// Package kinematics models serial-link robot arms and computes their
// forward kinematics: the mapping from joint values to the world-space
// position of every frame origin in the chain.
package kinematics

import (
	"github.com/armsim/armkin/spatialmath"
)

// JointKind determines which DH quantity a joint drives.
//   - revolute joints drive the joint angle theta, in radians.
//   - prismatic joints drive the link offset d, in length units.
type JointKind string

// The supported joint kinds.
const (
	Revolute  = JointKind("revolute")
	Prismatic = JointKind("prismatic")
)

// DHParameter describes one link of a serial manipulator using the Standard
// (Classic) Denavit-Hartenberg convention. Exactly one of Theta (Revolute)
// or D (Prismatic) is the variable quantity driven by the joint value; the
// other three fields are fixed link geometry, set at construction and never
// mutated by joint updates.
type DHParameter struct {
	// A is the link length, the distance along X from Z_i-1 to Z_i.
	A float64
	// Alpha is the link twist in radians, the rotation around X from Z_i-1 to Z_i.
	Alpha float64
	// D is the link offset, the distance along Z from X_i-1 to X_i.
	D float64
	// Theta is the joint angle in radians, the rotation around Z from X_i-1 to X_i.
	Theta float64
	// Kind selects which of Theta or D the joint value replaces.
	Kind JointKind
	// Offset is added to the commanded joint value before it replaces the
	// variable quantity, for homing or calibration.
	Offset float64
}

// NewRevoluteDH returns a revolute joint's DH parameters. The joint drives
// theta; d is fixed. thetaOffset is both the initial joint angle and the
// offset applied to every commanded value.
func NewRevoluteDH(a, alpha, d, thetaOffset float64) DHParameter {
	return DHParameter{A: a, Alpha: alpha, D: d, Theta: thetaOffset, Kind: Revolute, Offset: thetaOffset}
}

// NewPrismaticDH returns a prismatic joint's DH parameters. The joint drives
// d; theta is fixed. dOffset is both the initial link offset and the offset
// applied to every commanded value.
func NewPrismaticDH(a, alpha, dOffset, theta float64) DHParameter {
	return DHParameter{A: a, Alpha: alpha, D: dOffset, Theta: theta, Kind: Prismatic, Offset: dOffset}
}

// NewPlanarDH returns the revolute DH parameters of a planar link: no twist,
// no offset, only the link length and the driven angle matter.
func NewPlanarDH(linkLength float64) DHParameter {
	return NewRevoluteDH(linkLength, 0, 0, 0)
}

// Transform derives the homogeneous transform from frame i-1 to frame i for
// the given joint value, as the ordered composition
//
//	Rot(Z, theta) * Trans(Z, d) * Trans(X, a) * Rot(X, alpha)
//
// per the Standard DH convention. The ordering is load-bearing: the Modified
// (Craig) convention interleaves these differently and produces different
// frames for the same four numbers.
func (p DHParameter) Transform(value float64) spatialmath.Transform {
	theta, d := p.Theta, p.D
	switch p.Kind {
	case Prismatic:
		d = p.Offset + value
	default:
		theta = p.Offset + value
	}
	return spatialmath.NewRotationZ(theta).
		Compose(spatialmath.NewTranslation(0, 0, d)).
		Compose(spatialmath.NewTranslation(p.A, 0, 0)).
		Compose(spatialmath.NewRotationX(p.Alpha))
}

func (p DHParameter) validate() error {
	switch p.Kind {
	case Revolute, Prismatic:
		return nil
	default:
		return NewInvalidJointKindError(string(p.Kind))
	}
}
