// Package codegen turns a field sequence and a layout selector into the
// source of a standalone React form component validated with zod.
//
// Output is a pure function of its input: fields are walked in order, no map
// is iterated and nothing time-dependent is consulted, so equal input yields
// byte-identical text. Each field contributes a schema entry, a default value
// and a FormField block, all keyed by SchemaKey(field.ID). Constraints that do
// not apply to a field's declared type are ignored rather than rejected.
package codegen
