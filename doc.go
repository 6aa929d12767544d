// Package lpdict is your in-memory playground for solving linear programs
// the way a textbook does it — dictionary by dictionary, pivot by pivot,
// with every intermediate state handed back to you.
//
// 🚀 What is lpdict?
//
//	A small, exact-arithmetic simplex engine that brings together:
//		• Rational algebra: linear expressions over big.Rat, parse & render
//		• Dictionaries: the simplex tableau in equation form
//		• Oracles: feasibility, optimality and unboundedness tests
//		• The ratio test: entering candidates with exact tie-breaking
//		• Pivot policies: naive, random, and anti-cycling (default)
//		• Two-phase method: auxiliary dictionary rescue for infeasible starts
//		• Step driver: a lazy, one-shot sequence of (snapshot, status) pairs
//
// ✨ Why choose lpdict?
//
//   - Exact – every coefficient is a rational number, never a float
//   - Observable – each pivot yields a snapshot you can print or inspect
//   - Deterministic – fixed insertion-order iteration, seeded randomness
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	expr/    — exact-rational linear expressions, constraints, parser
//	simplex/ — dictionary model, pivoting, policies, two-phase, step driver
//
// Quick ASCII example:
//
//	Objective: 2x1 + 3x2
//	w1 = 6 - x1 - x2
//	w2 = 10 - 2x1 - x2
//	w3 = 4 + x1 - x2
//
//	pivots until → Objective: 17 + ... with x1 = 1, x2 = 5.
//
// Dive into examples/ for runnable walk-throughs: the golden maximization,
// an unbounded ray, and an infeasible start rescued by the two-phase method.
//
//	go get github.com/katalvlaran/lpdict
package lpdict
