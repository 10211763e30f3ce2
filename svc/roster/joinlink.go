package roster

import (
	"crypto/sha256"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/edulab/coursekit/pkg/secrets"
)

const joinPath = "/page/studentCourseJoin"

// NewRegistrationKey returns a fresh key to issue to a newly enrolled
// student. The key itself is opaque; join links carry it only in encrypted
// form.
func NewRegistrationKey() string {
	return uuid.NewString()
}

// JoinLinkBuilder produces the course-join links that are mailed to
// students. The registration key is encrypted with the application key
// scoped to the course, so a link for one course cannot be replayed against
// another.
type JoinLinkBuilder struct {
	baseURL string
	appKey  []byte
}

func NewJoinLinkBuilder(baseURL string, appKey []byte) *JoinLinkBuilder {
	return &JoinLinkBuilder{baseURL: strings.TrimSuffix(baseURL, "/"), appKey: appKey}
}

// Build returns the join link for the record, or ErrMissingRegistrationKey
// when none has been issued yet.
func (b *JoinLinkBuilder) Build(rec Record) (string, error) {
	if rec.Key == "" {
		return "", ErrMissingRegistrationKey
	}
	enc, err := b.encryptKey(rec)
	if err != nil {
		return "", fmt.Errorf("encrypt registration key for %s: %w", rec.IdentificationString(), err)
	}
	q := url.Values{}
	q.Set("key", enc)
	q.Set("studentemail", rec.Email)
	q.Set("courseid", rec.Course)
	return b.baseURL + joinPath + "?" + q.Encode(), nil
}

// Verify decrypts the key parameter of a submitted join link and reports
// whether it matches the record's registration key.
func (b *JoinLinkBuilder) Verify(rec Record, encryptedKey string) (bool, error) {
	plain, err := secrets.DecryptString(b.appKey, courseKey(rec.Course), encryptedKey)
	if err != nil {
		return false, fmt.Errorf("decrypt registration key for %s: %w", rec.IdentificationString(), err)
	}
	return plain == rec.Key, nil
}

func (b *JoinLinkBuilder) encryptKey(rec Record) (string, error) {
	return secrets.EncryptString(b.appKey, courseKey(rec.Course), rec.Key)
}

// courseKey stretches a course id into a fixed-size scoping key.
func courseKey(courseID string) []byte {
	sum := sha256.Sum256([]byte(courseID))
	return sum[:]
}
