// Package validate provides the validator pipeline used by setting
// declarations: small predicate validators that inspect a single value and an
// aggregation policy that runs every validator and collects all failure
// messages before reporting.
//
// A Validator is a plain func(value any) error. Failing validators return an
// Errors value carrying one or more messages. Apply runs a list of validators
// without short-circuiting:
//
//	err := validate.Apply(raw,
//	    validate.Type(validate.Int),
//	    validate.Min(0),
//	    validate.Max(5),
//	)
//	if err != nil {
//	    // err is validate.Errors with every violated rule's message.
//	}
//
// Base types are classified by Kind tags rather than exact Go types, so an
// int64 read from YAML satisfies validate.Type(validate.Int) and a
// map[string]struct{} satisfies validate.Type(validate.Set).
//
// Element constraints are expressed with generics:
//
//	validate.Items[string]()  // every slice element (or set member) is a string
//	validate.Keys[string]()   // every map key is a string
//	validate.Values[int]()    // every map value is an int
package validate
