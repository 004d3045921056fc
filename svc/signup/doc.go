// Package signup wires the registration validator to the collaborators that
// surround it: decoding submitted form values, notifying the user, and
// storing accepted records.
//
// A typical form layer does:
//
//	rec, err := signup.DecodeForm(values)
//	if err != nil {
//	    // malformed input: a caller bug, not a validation failure
//	}
//	report, err := svc.Submit(ctx, rec)
//
// Submit always returns the validation report. Its error is non-nil only
// when an accepted record could not be stored.
package signup
