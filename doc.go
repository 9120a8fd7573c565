// Package construct is your in-memory playground for the Builder design
// pattern — five self-contained variants of the same idea, from plain fluent
// chaining to compile-time staged construction.
//
// 🚀 What is construct?
//
//	A small, dependency-light catalogue of Builder shapes, each in its own
//	package, each buildable and testable in isolation:
//		• markup/  — fluent builder assembling an indented markup tree
//		• vehicle/ — stepwise builder: one capability interface per stage,
//		  illegal construction orders do not compile
//		• person/  — recursive-generic builder: fluent methods inherited
//		  across stages without losing the concrete chain type
//		• worker/  — functional builder: deferred mutation steps folded
//		  over a fresh record at Build time
//		• member/  — faceted builder: several narrow facades mutating one
//		  shared record, switchable mid-chain
//
// ✨ Why choose construct?
//
//   - Beginner-friendly – minimal API per package, clear, intuitive naming
//   - Honest contracts – sentinel errors, errors.Is branching, no panics
//     outside option constructors
//   - Pure Go – no cgo, no I/O, no hidden state between packages
//   - Demo-ready – cmd/construct walks every variant from the console
//
// Quick ASCII example (the vehicle package's staged pipeline):
//
//	CategoryStep ──OfType──▶ WheelStep ──WithWheels──▶ BuildStep ──Build──▶ Vehicle
//
//	each arrow is the ONLY method the handle at that stage exposes.
//
// The packages never interact: pick the one that matches the API shape you
// are studying and read it top to bottom. Dive into cmd/construct for a
// console tour of all five.
//
//	go get github.com/katalvlaran/construct
package construct
