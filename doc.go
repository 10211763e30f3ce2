// Package coursekit is a toolkit for course-management services: typed
// records for students, instructors, and feedback response comments, with
// the validation, sanitization, and persistence plumbing around them.
//
// The domain packages live under svc:
//
//   - svc/roster: student enrollment records, bulk-update reconciliation,
//     roster ordering, registration keys and course-join links
//   - svc/faculty: instructor records with role presets and per-section
//     permission overrides
//   - svc/feedback: comments on feedback responses with participant-type
//     visibility lists
//
// Supporting packages under pkg carry the shared infrastructure: validator
// (additive field validation), sanitizer (idempotent text cleanup), config,
// logger, pg, redis, and secrets.
//
// All record types are value objects: operations like Sanitized or Apply
// return new values and never mutate the receiver, and sort helpers return
// new slices.
package coursekit
