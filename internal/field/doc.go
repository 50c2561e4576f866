// Package field implements the storage behind generated class accessors.
//
// Every declared field owns its own reader/writer lock, so writers of two
// different fields on one object never contend. There is no cross-field
// atomicity: callers needing a consistent multi-field update must hold an
// external lock.
//
// A plain field is a [Value]: getters return a snapshot, setters replace the
// value. A field declared with the ref qualifier is a [Ref]: the field holds
// a pointer, getters hand out that pointer, and setters swap in a new one
// without touching pointers already handed out.
package field
