package kinematics

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ModelConfigJSON represents all supported fields in an arm model JSON file.
// KinParamType selects the arm mode: "simple" (the default) reads
// LinkLengths, "DH" reads DHParams.
type ModelConfigJSON struct {
	Name         string          `json:"name"`
	KinParamType string          `json:"kinematic_param_type,omitempty"`
	LinkLengths  []float64       `json:"link_lengths,omitempty"`
	DHParams     []DHParamConfig `json:"dhParams,omitempty"`
}

// DHParamConfig is one DH row of a model file. An empty Kind defaults to
// revolute. An absent Offset defaults to the row's variable-side quantity
// (theta for revolute, d for prismatic), matching the NewRevoluteDH and
// NewPrismaticDH constructors where that argument is both the initial value
// and the offset applied to every commanded value.
type DHParamConfig struct {
	ID     string   `json:"id"`
	A      float64  `json:"a"`
	Alpha  float64  `json:"alpha"`
	D      float64  `json:"d"`
	Theta  float64  `json:"theta"`
	Kind   string   `json:"kind,omitempty"`
	Offset *float64 `json:"offset,omitempty"`
}

// ToDHParameter converts the config row into a DHParameter, rejecting
// unsupported joint kinds.
func (cfg *DHParamConfig) ToDHParameter() (DHParameter, error) {
	kind := JointKind(cfg.Kind)
	if cfg.Kind == "" {
		kind = Revolute
	}
	p := DHParameter{A: cfg.A, Alpha: cfg.Alpha, D: cfg.D, Theta: cfg.Theta, Kind: kind}
	switch {
	case cfg.Offset != nil:
		p.Offset = *cfg.Offset
	case kind == Prismatic:
		p.Offset = cfg.D
	default:
		p.Offset = cfg.Theta
	}
	if err := p.validate(); err != nil {
		return DHParameter{}, errors.Wrapf(err, "joint %q", cfg.ID)
	}
	return p, nil
}

// UnmarshalModelJSON will parse the given JSON data into an arm. modelName
// sets the name of the arm, and will use the name from the JSON if the
// string is empty.
func UnmarshalModelJSON(jsonData []byte, modelName string) (*Arm, error) {
	// empty data probably means the caller has no model information
	if len(jsonData) == 0 {
		return nil, ErrNoModelInformation
	}
	cfg := &ModelConfigJSON{}
	if err := json.Unmarshal(jsonData, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal json file")
	}
	return cfg.ParseConfig(modelName)
}

// ParseConfig converts the ModelConfigJSON struct into a full Arm with the
// name modelName. Per-joint validation failures are aggregated so a bad
// file reports every offending row at once.
func (cfg *ModelConfigJSON) ParseConfig(modelName string) (*Arm, error) {
	if modelName == "" {
		modelName = cfg.Name
	}

	switch cfg.KinParamType {
	case "simple", "":
		return NewSimpleArm(modelName, cfg.LinkLengths), nil

	case "DH":
		var allErrs error
		joints := make([]DHParameter, 0, len(cfg.DHParams))
		for _, dh := range cfg.DHParams {
			p, err := dh.ToDHParameter()
			if err != nil {
				allErrs = multierr.Append(allErrs, err)
				continue
			}
			joints = append(joints, p)
		}
		if allErrs != nil {
			return nil, allErrs
		}
		return NewDHArm(modelName, joints)

	default:
		return nil, errors.Errorf("unsupported param type: %s, supported params are simple and DH", cfg.KinParamType)
	}
}

// ParseModelJSONFile reads and parses the model file at the given path.
func ParseModelJSONFile(path, modelName string) (*Arm, error) {
	jsonData, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read json file")
	}
	return UnmarshalModelJSON(jsonData, modelName)
}
