package fmod

import (
	"github.com/soniccore/fmod-go/abi"
)

// DSP is an effect or signal-generator unit created with
// System.CreateDSP. It processes audio once added into a channel or
// group DSP chain.
type DSP struct {
	opaque
}

func (d *DSP) release() error {
	return errFrom(abi.Current().DSPRelease(d.Raw()))
}

// SetActive starts or stops processing. Units are created inactive.
func (d *DSP) SetActive(active bool) error {
	return errFrom(abi.Current().DSPSetActive(d.Raw(), cBool(active)))
}

// Active reports whether the unit is processing.
func (d *DSP) Active() (bool, error) {
	var v int32
	err := errFrom(abi.Current().DSPGetActive(d.Raw(), &v))
	return goBool(v), err
}

// SetBypass makes an active unit pass audio through unprocessed.
func (d *DSP) SetBypass(bypass bool) error {
	return errFrom(abi.Current().DSPSetBypass(d.Raw(), cBool(bypass)))
}

// Bypassed reports whether the unit is bypassed.
func (d *DSP) Bypassed() (bool, error) {
	var v int32
	err := errFrom(abi.Current().DSPGetBypass(d.Raw(), &v))
	return goBool(v), err
}

// SetParameterFloat sets the float parameter at index. Indices and
// ranges are defined per DSPType.
func (d *DSP) SetParameterFloat(index int32, value float32) error {
	return errFrom(abi.Current().DSPSetParameterFloat(d.Raw(), index, value))
}

// ParameterFloat reports the float parameter at index.
func (d *DSP) ParameterFloat(index int32) (float32, error) {
	var v float32
	err := errFrom(abi.Current().DSPGetParameterFloat(d.Raw(), index, &v, 0, 0))
	return v, err
}

// SetParameterInt sets the int parameter at index.
func (d *DSP) SetParameterInt(index int32, value int32) error {
	return errFrom(abi.Current().DSPSetParameterInt(d.Raw(), index, value))
}

// SetParameterBool sets the bool parameter at index.
func (d *DSP) SetParameterBool(index int32, value bool) error {
	return errFrom(abi.Current().DSPSetParameterBool(d.Raw(), index, cBool(value)))
}

// Type reports the built-in type of the unit.
func (d *DSP) Type() (DSPType, error) {
	var v int32
	err := errFrom(abi.Current().DSPGetType(d.Raw(), &v))
	return DSPType(v), err
}
