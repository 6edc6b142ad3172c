// Package model defines the typed form definition shared by the store, the
// validation engine, the code generator and every renderer. Concrete types live
// in internal/model; this package re-exports them. A Field carries a fixed id
// and type plus mutable constraints: minLength/maxLength apply to text-like
// types, min/max/step to sliders and options to choice-based types. Optional
// constraints are pointers so that "absent" and zero stay distinct, and Patch
// uses Nullable to express "leave", "clear" and "replace" in one record so
// partial updates decoded from JSON can remove a constraint with null.
package model
