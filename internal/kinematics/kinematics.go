package kinematics

import "math"

const (
	// Gravity is the standard gravitational acceleration (m/s²).
	Gravity = 9.80665

	// AirDensity is the air density at sea level (kg/m³).
	AirDensity = 1.225
)

// Velocity returns the free-fall velocity at time t (m/s).
func Velocity(t float64) float64 {
	return Gravity * t
}

// Height returns the free-fall height at time t for initial height h0 (m).
// There is no ground clamp: the value goes negative once the body would
// have passed h=0.
func Height(h0, t float64) float64 {
	return h0 - 0.5*Velocity(t)*t
}

// TerminalVelocity returns the terminal velocity for drag coefficient cd,
// cross-sectional area a (m²) and mass m (kg). cd·a and m must be
// positive; callers validate before reaching this point.
func TerminalVelocity(cd, a, m float64) float64 {
	return math.Sqrt(2 * m * Gravity / (AirDensity * cd * a))
}

// DragVelocity returns the velocity at time t under quadratic air drag.
// It is monotonically non-decreasing in t and bounded by the terminal
// velocity, which it approaches asymptotically.
func DragVelocity(cd, a, m, t float64) float64 {
	vt := TerminalVelocity(cd, a, m)
	return vt * math.Tanh(Gravity*t/vt)
}

// DragHeight returns the height at time t under quadratic air drag for
// initial height h0. It is the integral of DragVelocity subtracted from
// h0, in the ln cosh form that stays finite for arbitrarily large t.
func DragHeight(cd, a, h0, m, t float64) float64 {
	vt := TerminalVelocity(cd, a, m)
	return h0 - vt*vt/Gravity*lnCosh(Gravity*t/vt)
}

// lnCosh computes ln(cosh(x)) without overflowing for large |x|:
// ln cosh x = |x| + ln(1+e^(-2|x|)) - ln 2.
func lnCosh(x float64) float64 {
	x = math.Abs(x)
	return x + math.Log1p(math.Exp(-2*x)) - math.Ln2
}

// VelocityOver evaluates Velocity over a time grid.
func VelocityOver(ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = Velocity(t)
	}
	return out
}

// HeightOver evaluates Height over a time grid.
func HeightOver(h0 float64, ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = Height(h0, t)
	}
	return out
}

// DragVelocityOver evaluates DragVelocity over a time grid. The terminal
// velocity is computed once for the whole grid.
func DragVelocityOver(cd, a, m float64, ts []float64) []float64 {
	vt := TerminalVelocity(cd, a, m)
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = vt * math.Tanh(Gravity*t/vt)
	}
	return out
}

// DragHeightOver evaluates DragHeight over a time grid.
func DragHeightOver(cd, a, h0, m float64, ts []float64) []float64 {
	vt := TerminalVelocity(cd, a, m)
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = h0 - vt*vt/Gravity*lnCosh(Gravity*t/vt)
	}
	return out
}
