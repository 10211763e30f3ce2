// Package faculty models the instructors of a course: who they are, how
// they are displayed to students, and what they are allowed to do.
//
// The central type is Record, a value object assembled through Builder.
// Every optional field has a defined default, so a freshly built record is
// always fully populated even when the caller supplied almost nothing.
// Permissions live in Privileges, a course-level permission map with
// per-section overrides, initialized from one of the named role presets.
//
// Records carry no hidden state and are safe to copy; Sanitized and Apply
// style operations return new values instead of mutating the receiver.
package faculty
