// Package validator provides small, composable validation rules for the
// field types a registration form submits: strings, patterns, loose formats
// and dates.
//
// Each rule is a Rule value pairing a boolean Check with the ValidationError
// reported when the check fails. Rules are evaluated with Apply, which runs
// every rule (no short-circuit) and aggregates the failures into a
// ValidationErrors slice that satisfies the error interface.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("password", password),
//	    validator.LooseEmail("email", email),
//	    validator.MinAgeAt("birthDate", birthDate, 18, now),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.First(field) next to the input
//	    }
//	}
//
// Messages are plain English defaults; callers replace them with
// Rule.WithMessage when a form needs its own wording.
//
// # Time
//
// Date rules never read the system clock. The reference instant is always a
// parameter, so rule results are reproducible in tests.
//
// The package holds no mutable state and is safe for concurrent use.
package validator
