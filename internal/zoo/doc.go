// Package zoo is a small reference hierarchy written in the shape the
// schema compiler emits:
//
//	Animal < Object
//	Dog    < Animal < Object
//	Puppy  < Dog < Animal < Object
//	Cat    < Animal < Object
//
// Dog and Cat are siblings: one Node holds at most the components its own
// construction chain attached.
package zoo
