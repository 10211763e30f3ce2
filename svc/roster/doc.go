// Package roster holds the application-level view of students enrolled in a
// course: the Record value object, its builder, enrollment reconciliation,
// sorting helpers, and the storage boundary to the course_students table.
//
// A Record is built via NewBuilder, which substitutes documented defaults for
// every optional field that is absent. A freshly built record may still
// violate field format rules; callers are expected to run Validate before
// accepting input and Sanitized before persisting. Validation reports every
// violation at once and never fails hard; sanitization is idempotent.
//
// Records are plain values. Sharing a built Record between goroutines is
// safe; sharing a Builder is not.
package roster
