// Package fixtures builds small synthetic Volumes — a straight bright
// tube, an L-shaped tube, a barrier with a single gap, and a
// Gaussian-intensity cylinder — for exercising the search, fill, and
// hessian packages without depending on real image data. Those packages'
// own tests build their volumes inline and do not import fixtures.
//
// The construction style is grounded on the teacher's builder package:
// a private config struct with sane defaults, mutated in order by a
// chain of functional Options, and an optional deterministic *rand.Rand
// source (nil meaning no added noise) rather than an ambient global RNG.
package fixtures
