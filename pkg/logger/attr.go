package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// CourseID records the course identifier under the key "course_id".
func CourseID(id string) slog.Attr {
	return slog.String("course_id", id)
}

// StudentEmail records a student's email under the key "student_email".
func StudentEmail(email string) slog.Attr {
	return slog.String("student_email", email)
}

// InstructorEmail records an instructor's email under the key "instructor_email".
func InstructorEmail(email string) slog.Attr {
	return slog.String("instructor_email", email)
}

// CommentID records a feedback response comment id under the key "comment_id".
func CommentID(id int64) slog.Attr {
	return slog.Int64("comment_id", id)
}

// Section records a section name under the key "section".
func Section(name string) slog.Attr {
	return slog.String("section", name)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
