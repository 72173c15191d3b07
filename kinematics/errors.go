package kinematics

import "github.com/pkg/errors"

// ErrNoModelInformation is used when there is no model information.
var ErrNoModelInformation = errors.New("no model information")

// NewDimensionMismatchError returns an error for when the number of joint
// values given does not match the arm's degrees of freedom.
func NewDimensionMismatchError(got, want int) error {
	return errors.Errorf("number of joint values (%d) does not match arm degrees of freedom (%d)", got, want)
}

// NewJointAnglesUnsupportedError returns an error for arms that do not
// support the two-joint angle convenience.
func NewJointAnglesUnsupportedError() error {
	return errors.New("setting joint angles requires a 2-DoF simple arm")
}

// NewInvalidJointKindError returns an error for a joint kind outside the
// supported set.
func NewInvalidJointKindError(kind string) error {
	return errors.Errorf("invalid joint kind %q, supported kinds are %q and %q", kind, Revolute, Prismatic)
}
