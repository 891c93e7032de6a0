// Package kinematics provides closed-form solutions for a body falling
// from rest, with and without quadratic air drag.
//
// All functions are pure and stateless. The free-fall pair is the
// standard constant-acceleration solution; the drag pair is the analytic
// solution of dv/dt = g - (g/vt²)v², expressed through tanh and ln cosh
// so that large times cannot overflow:
//
//	v(t) = vt·tanh(g·t/vt)
//	h(t) = h0 - (vt²/g)·ln cosh(g·t/vt)
//
// Each scalar function has an ...Over variant evaluating elementwise
// over a time grid.
package kinematics
