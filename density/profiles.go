// Copyright (c) 2025, The MSN Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"errors"
	"fmt"

	"github.com/goki/mat32"
)

var (
	// ErrInvalidMechanism is returned when a (compartment, mechanism)
	// pair has no entry in the profile dispatch table.  The soma and
	// dendrites fall back to a uniform profile for unlisted mechanisms;
	// the axon does not, so an unlisted axonal mechanism is an error.
	ErrInvalidMechanism = errors.New("invalid mechanism for compartment")

	// ErrNegativeDensity is returned when a computed density is
	// negative.  A negative density signals corrupt distribution
	// parameters upstream; it is never silently clamped to zero.
	ErrNegativeDensity = errors.New("negative channel density")

	// ErrShapeArgs is returned when the shape argument count does not
	// match the arity of the selected profile function.
	ErrShapeArgs = errors.New("wrong number of shape arguments")
)

// Profile is the kind of density profile function applied to a
// (compartment, mechanism) pair.
type Profile int

//go:generate stringer -type=Profile

const (
	// ProfUniform is distance-independent: peak * 10^p0.  Also covers
	// the flat log profile used for kir and sk.
	ProfUniform Profile = iota

	// ProfStep is p0*peak inside the (p2, p3) distance window and
	// p1*peak outside it
	ProfStep

	// ProfSigmoidNaf is the naf dendritic sigmoid with a sustained
	// distal fraction 1-p1
	ProfSigmoidNaf

	// ProfSigmoidKaf is the kaf dendritic sigmoid, increasing from 1
	// to 1+p1 proximally
	ProfSigmoidKaf

	// ProfSigmoidKas is the kas dendritic sigmoid with a fixed 0.1
	// distal floor (3 args: p0, p2, p3)
	ProfSigmoidKas

	// ProfSigmoidCaN is the can dendritic sigmoid; calcium
	// permeability is absolute, with no peak multiplier
	ProfSigmoidCaN

	// ProfSigmoidCav is the cav32/cav33 dendritic sigmoid (3 args,
	// no peak multiplier)
	ProfSigmoidCav

	ProfileN
)

// profArity is the number of shape arguments each profile requires.
var profArity = [ProfileN]int{1, 4, 4, 4, 3, 4, 3}

// Uniform is the distance-independent density: peak * 10^p0.
// With the default p0 = 0 the density is exactly the peak value.
func Uniform(args []float32, peak float32) float32 {
	return peak * mat32.Pow(10, args[0])
}

// Step returns p0*peak for distances strictly inside the (p2, p3)
// window and p1*peak otherwise.  Both boundaries use the outside
// branch.
func Step(dist float32, args []float32, peak float32) float32 {
	if dist > args[2] && dist < args[3] {
		return args[0] * peak
	}
	return args[1] * peak
}

// SigmoidNaf is the dendritic naf profile:
// peak * 10^p0 * (1 - p1 + p1/(1+exp((d-p2)/p3))).
func SigmoidNaf(dist float32, args []float32, peak float32) float32 {
	p0, p1, p2, p3 := args[0], args[1], args[2], args[3]
	return peak * mat32.Pow(10, p0) * (1 - p1 + p1/(1+mat32.Exp((dist-p2)/p3)))
}

// SigmoidKaf is the dendritic kaf profile:
// peak * 10^p0 * (1 + p1/(1+exp((d-p2)/p3))).
func SigmoidKaf(dist float32, args []float32, peak float32) float32 {
	p0, p1, p2, p3 := args[0], args[1], args[2], args[3]
	return peak * mat32.Pow(10, p0) * (1 + p1/(1+mat32.Exp((dist-p2)/p3)))
}

// SigmoidKas is the dendritic kas profile, with a fixed 0.1 distal
// floor and 3 shape args (p0, p2, p3):
// peak * 10^p0 * (0.1 + 0.9/(1+exp((d-p2)/p3))).
func SigmoidKas(dist float32, args []float32, peak float32) float32 {
	p0, p2, p3 := args[0], args[1], args[2]
	return peak * mat32.Pow(10, p0) * (0.1 + 0.9/(1+mat32.Exp((dist-p2)/p3)))
}

// SigmoidCaN is the dendritic can permeability profile.  Calcium
// permeability is absolute: no peak multiplier.
func SigmoidCaN(dist float32, args []float32) float32 {
	p0, p1, p2, p3 := args[0], args[1], args[2], args[3]
	return mat32.Pow(10, p0) * (1 - p1 + p1/(1+mat32.Exp((dist-p2)/p3)))
}

// SigmoidCav is the dendritic cav32/cav33 permeability profile (3 args,
// no peak multiplier): 10^p0 / (1+exp((d-p2)/p3)).
func SigmoidCav(dist float32, args []float32) float32 {
	p0, p2, p3 := args[0], args[1], args[2]
	return mat32.Pow(10, p0) / (1 + mat32.Exp((dist-p2)/p3))
}

// ProfileFor returns the density profile for the given (compartment,
// mechanism) pair per the fixed dispatch table.  Soma and dendrites
// fall back to a uniform profile for unlisted mechanisms; the axon
// carries only kas, km and naf.
func ProfileFor(comp CompartmentClass, mech Mechanism) (Profile, error) {
	switch comp {
	case Dend:
		switch mech {
		case Naf:
			return ProfSigmoidNaf, nil
		case Kaf:
			return ProfSigmoidKaf, nil
		case Kas:
			return ProfSigmoidKas, nil
		case Kir, SK:
			return ProfUniform, nil
		case CaN:
			return ProfSigmoidCaN, nil
		case Cav32, Cav33:
			return ProfSigmoidCav, nil
		default:
			return ProfUniform, nil
		}
	case Axon:
		switch mech {
		case Kas, KM:
			return ProfUniform, nil
		case Naf:
			return ProfStep, nil
		default:
			return ProfileN, fmt.Errorf("%w: %s in %s", ErrInvalidMechanism, mech.MechName(), comp.ClassName())
		}
	case Soma:
		return ProfUniform, nil
	}
	return ProfileN, fmt.Errorf("%w: %s in unknown compartment class %d", ErrInvalidMechanism, mech.MechName(), comp)
}

// Resolve computes the channel density for one segment: the mechanism's
// gbar (or pbar) at the given somatic distance, from the shape args and
// peak value supplied by the parameter store.  Resolve is a pure
// function of its inputs.  It fails with ErrInvalidMechanism when the
// dispatch table has no entry, ErrShapeArgs on an arity mismatch, and
// ErrNegativeDensity when the result is negative.
func Resolve(dist float32, comp CompartmentClass, mech Mechanism, args []float32, peak float32) (float32, error) {
	prof, err := ProfileFor(comp, mech)
	if err != nil {
		return 0, err
	}
	if len(args) != profArity[prof] {
		return 0, fmt.Errorf("%w: %s in %s: got %d, need %d", ErrShapeArgs,
			mech.MechName(), comp.ClassName(), len(args), profArity[prof])
	}
	var den float32
	switch prof {
	case ProfUniform:
		den = Uniform(args, peak)
	case ProfStep:
		den = Step(dist, args, peak)
	case ProfSigmoidNaf:
		den = SigmoidNaf(dist, args, peak)
	case ProfSigmoidKaf:
		den = SigmoidKaf(dist, args, peak)
	case ProfSigmoidKas:
		den = SigmoidKas(dist, args, peak)
	case ProfSigmoidCaN:
		den = SigmoidCaN(dist, args)
	case ProfSigmoidCav:
		den = SigmoidCav(dist, args)
	}
	if den < 0 || mat32.IsNaN(den) {
		return 0, fmt.Errorf("%w: %s in %s at distance %g: %g", ErrNegativeDensity,
			mech.MechName(), comp.ClassName(), dist, den)
	}
	return den, nil
}
