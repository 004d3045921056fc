// Package registration validates a submitted sign-up form.
//
// Validate inspects a Record and returns a Report holding the overall verdict
// and one message per field. An empty message means the field passed. Every
// field is checked independently, so a single call reports all failures at
// once:
//
//	report := registration.Validate(record, time.Now())
//	if !report.Valid {
//	    for field, msg := range report.Errors.Map() {
//	        // render msg next to the input named field
//	    }
//	}
//
// The reference instant for the minimum-age check is always supplied by the
// caller. The package never reads the system clock and holds no state, so
// Validate is deterministic and safe for concurrent use.
package registration
