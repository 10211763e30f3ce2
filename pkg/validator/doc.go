// Package validator provides rule-based field validation for course-management
// records: course identifiers, person and team names, emails, Google account
// ids, and free-text comments.
//
// Validation is declarative. Each exported function constructs a Rule value
// holding a boolean Check together with translation-friendly error metadata.
// Rules are evaluated with Apply, which aggregates every failure into a
// ValidationErrors slice implementing the error interface. Checks never
// short-circuit one another: a record with three bad fields reports three
// violations in rule order.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("course", courseID),
//	    validator.MaxLenString("course", courseID, validator.MaxCourseIDLen),
//	    validator.ValidCourseID("course", courseID),
//	    validator.ValidEmail("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, msg := range verrs.Messages() {
//	        // surface to the caller; never thrown as a hard fault
//	    }
//	}
//
// The package holds no global state and every helper is a pure function, so
// rules are safe to build and evaluate concurrently.
package validator
