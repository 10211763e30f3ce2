package roster_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulab/coursekit/pkg/secrets"
	"github.com/edulab/coursekit/svc/roster"
)

func TestNewRegistrationKey(t *testing.T) {
	t.Parallel()

	a := roster.NewRegistrationKey()
	b := roster.NewRegistrationKey()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestJoinLinkRoundTrip(t *testing.T) {
	t.Parallel()

	appKey, err := secrets.GenerateKey()
	require.NoError(t, err)

	rec := validRecord(t)
	rec.Key = roster.NewRegistrationKey()

	builder := roster.NewJoinLinkBuilder("https://courses.example.com/", appKey)

	link, err := builder.Build(rec)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://courses.example.com/page/studentCourseJoin?"))

	u, err := url.Parse(link)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, rec.Email, q.Get("studentemail"))
	assert.Equal(t, rec.Course, q.Get("courseid"))
	assert.NotEqual(t, rec.Key, q.Get("key"), "link must not expose the raw key")

	ok, err := builder.Verify(rec, q.Get("key"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestJoinLinkScopedToCourse(t *testing.T) {
	t.Parallel()

	appKey, err := secrets.GenerateKey()
	require.NoError(t, err)
	builder := roster.NewJoinLinkBuilder("https://courses.example.com", appKey)

	rec := validRecord(t)
	rec.Key = roster.NewRegistrationKey()

	link, err := builder.Build(rec)
	require.NoError(t, err)
	u, err := url.Parse(link)
	require.NoError(t, err)

	// The same encrypted key must not verify for another course.
	other := rec
	other.Course = "cs2103"
	_, err = builder.Verify(other, u.Query().Get("key"))
	assert.Error(t, err)
}

func TestJoinLinkRequiresKey(t *testing.T) {
	t.Parallel()

	appKey, err := secrets.GenerateKey()
	require.NoError(t, err)
	builder := roster.NewJoinLinkBuilder("https://courses.example.com", appKey)

	rec := validRecord(t)
	rec.Key = ""
	_, err = builder.Build(rec)
	require.ErrorIs(t, err, roster.ErrMissingRegistrationKey)
}
