package wordlist

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader("  Password \n\nQWERTY\r\nqwerty\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("password"))
	assert.True(t, s.Contains("qwerty"))
	assert.False(t, s.Contains("Password"), "lookups take normalised entries")
}

func TestSet(t *testing.T) {
	var empty *Set
	assert.False(t, empty.Contains("x"))
	assert.Equal(t, 0, empty.Len())

	s := NewSet("a", " ", "B")
	s.Merge(NewSet("c", "a"))
	assert.ElementsMatch(t, []string{"a", "b", "c"}, s.Entries())
}

func TestMulti(t *testing.T) {
	m := Multi{NewSet("one"), nil, NewSet("two")}
	assert.True(t, m.Contains("one"))
	assert.True(t, m.Contains("two"))
	assert.False(t, m.Contains("three"))
}

func TestListContains(t *testing.T) {
	l := &List{Set: NewSet("inmemory")}
	assert.True(t, l.Contains("inmemory"))
	assert.False(t, l.Contains("indexed"))

	l.Index = NewSet("indexed")
	assert.True(t, l.Contains("indexed"))
	assert.False(t, l.Contains("neither"))
}

func TestDefault(t *testing.T) {
	s := Default()
	assert.Greater(t, s.Len(), 100)
	assert.True(t, s.Contains("123456"))
	assert.True(t, s.Contains("troubador"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("FromFile\n"), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "fromurl")
	}))
	defer srv.Close()

	l := Load(context.Background(), Options{
		Path:  path,
		URL:   srv.URL,
		Index: NewSet("fromindex"),
	})

	assert.True(t, l.Contains("fromfile"))
	assert.True(t, l.Contains("fromurl"))
	assert.True(t, l.Contains("fromindex"))
	assert.True(t, l.Contains("letmein"))
	assert.Equal(t, Default().Len()+2, l.Len())
}

func TestLoadSkipsFailedSources(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	l := Load(context.Background(), Options{
		Path:   filepath.Join(t.TempDir(), "missing.txt"),
		URL:    srv.URL,
		Bucket: "wordlists",
		Object: "list.txt",
	})

	assert.Equal(t, Default().Len(), l.Len())
	assert.False(t, l.Contains("fromindex"))
}

func TestFromURLStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := FromURL(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "502")
}
