package kinematics

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/armsim/armkin/spatialmath"
)

func assertPositions(t *testing.T, got []JointPosition, want []r3.Vector) {
	t.Helper()
	test.That(t, got, test.ShouldHaveLength, len(want))
	for i, p := range got {
		test.That(t, p.Index, test.ShouldEqual, i)
		test.That(t, spatialmath.R3VectorAlmostEqual(p.Position, want[i], floatEpsilon), test.ShouldBeTrue)
	}
}

func TestFKZeroAngles(t *testing.T) {
	arm := NewSimpleArm("planar2", []float64{2.0, 1.5})
	test.That(t, arm.SetJointValues([]float64{0, 0}), test.ShouldBeNil)
	assertPositions(t, ForwardKinematics(arm), []r3.Vector{
		{},
		{X: 2.0},
		{X: 3.5},
	})
}

func TestFKFirstJoint90Degrees(t *testing.T) {
	arm := NewSimpleArm("planar2", []float64{2.0, 1.5})
	test.That(t, arm.SetJointValues([]float64{math.Pi / 2, 0}), test.ShouldBeNil)
	assertPositions(t, ForwardKinematics(arm), []r3.Vector{
		{},
		{Y: 2.0},
		{Y: 3.5},
	})
}

func TestFKBothJoints90Degrees(t *testing.T) {
	arm := NewSimpleArm("planar2", []float64{2.0, 1.5})
	test.That(t, arm.SetJointValues([]float64{math.Pi / 2, math.Pi / 2}), test.ShouldBeNil)
	assertPositions(t, ForwardKinematics(arm), []r3.Vector{
		{},
		{Y: 2.0},
		{X: -1.5, Y: 2.0},
	})
}

func TestFKFoldedConfiguration(t *testing.T) {
	arm := NewSimpleArm("planar2", []float64{2.0, 1.5})
	test.That(t, arm.SetJointValues([]float64{0, math.Pi}), test.ShouldBeNil)
	assertPositions(t, ForwardKinematics(arm), []r3.Vector{
		{},
		{X: 2.0},
		{X: 0.5},
	})
}

func TestFKCrossModeConsistency(t *testing.T) {
	// a single revolute DH joint with a=1, alpha=0, d=0 must match the
	// one-link planar arm for every angle
	dhArm, err := NewDHArm("dh1", []DHParameter{NewRevoluteDH(1, 0, 0, 0)})
	test.That(t, err, test.ShouldBeNil)
	simpleArm := NewSimpleArm("planar1", []float64{1})

	for _, angle := range []float64{0, math.Pi / 2, -math.Pi / 3, 1.1, 4.7} {
		test.That(t, dhArm.SetJointValues([]float64{angle}), test.ShouldBeNil)
		test.That(t, simpleArm.SetJointValues([]float64{angle}), test.ShouldBeNil)
		got := EndEffectorPosition(dhArm)
		want := EndEffectorPosition(simpleArm)
		test.That(t, spatialmath.R3VectorAlmostEqual(got, want, floatEpsilon), test.ShouldBeTrue)
	}

	test.That(t, dhArm.SetJointValues([]float64{math.Pi / 2}), test.ShouldBeNil)
	got := EndEffectorPosition(dhArm)
	test.That(t, spatialmath.R3VectorAlmostEqual(got, r3.Vector{Y: 1}, floatEpsilon), test.ShouldBeTrue)
}

func TestFKZeroConfigCollinear(t *testing.T) {
	// all-zero revolute angles with d=0 puts every frame origin on the X
	// axis at the partial sums of the a values
	aValues := []float64{1.0, 0.5, 2.0, 0.25}
	params := make([]DHParameter, 0, len(aValues))
	for _, a := range aValues {
		params = append(params, NewRevoluteDH(a, 0, 0, 0))
	}
	arm, err := NewDHArm("chain4", params)
	test.That(t, err, test.ShouldBeNil)

	positions := ForwardKinematics(arm)
	test.That(t, positions, test.ShouldHaveLength, len(aValues)+1)
	sum := 0.0
	for i, p := range positions {
		if i > 0 {
			sum += aValues[i-1]
		}
		test.That(t, spatialmath.R3VectorAlmostEqual(p.Position, r3.Vector{X: sum}, floatEpsilon), test.ShouldBeTrue)
	}
}

func TestFKPrismatic(t *testing.T) {
	// rotate 90 about Z, then extend the prismatic joint 0.75 along its Z
	arm, err := NewDHArm("rp", []DHParameter{
		NewRevoluteDH(1, math.Pi/2, 0, 0),
		NewPrismaticDH(0, 0, 0, 0),
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, arm.SetJointValues([]float64{math.Pi / 2, 0.75}), test.ShouldBeNil)

	positions := ForwardKinematics(arm)
	test.That(t, positions, test.ShouldHaveLength, 3)
	test.That(t, spatialmath.R3VectorAlmostEqual(positions[1].Position, r3.Vector{Y: 1}, floatEpsilon), test.ShouldBeTrue)
	// the twist of the first link points the second joint's Z along world +X
	test.That(t, spatialmath.R3VectorAlmostEqual(positions[2].Position, r3.Vector{X: 0.75, Y: 1}, floatEpsilon), test.ShouldBeTrue)
}

func TestFKSimpleChainIsPlanar(t *testing.T) {
	arm := NewSimpleArm("planar3", []float64{1, 1, 1})
	test.That(t, arm.SetJointValues([]float64{0.3, -1.2, 2.9}), test.ShouldBeNil)
	for _, p := range ForwardKinematics(arm) {
		test.That(t, p.Position.Z, test.ShouldAlmostEqual, 0, floatEpsilon)
	}
}

func TestFKZeroDoF(t *testing.T) {
	arm := NewSimpleArm("empty", nil)
	positions := ForwardKinematics(arm)
	test.That(t, positions, test.ShouldHaveLength, 1)
	test.That(t, positions[0].Position, test.ShouldResemble, r3.Vector{})
}

func TestFKNaNPropagates(t *testing.T) {
	arm := NewSimpleArm("planar1", []float64{1})
	test.That(t, arm.SetJointValues([]float64{math.NaN()}), test.ShouldBeNil)
	got := EndEffectorPosition(arm)
	test.That(t, math.IsNaN(got.X), test.ShouldBeTrue)
}
