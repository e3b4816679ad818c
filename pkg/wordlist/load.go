package wordlist

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/hatchdotlol/cipherpass/pkg/db"
)

const (
	fetchTimeout = 30 * time.Second
	clientAgent  = "cipherpass-wordlist/1.0"
)

//go:embed data/common-passwords.txt
var defaultList []byte

var fetchClient = http.Client{
	Timeout: fetchTimeout,
}

// Options names the optional sources merged on top of the embedded list.
type Options struct {
	Path   string
	URL    string
	Bucket string
	Object string
	// Index is consulted on lookup instead of being loaded into memory.
	Index Store
}

// List is the loaded wordlist: an in-memory set plus an optional index.
type List struct {
	*Set
	Index Store
}

func (l *List) Contains(entry string) bool {
	return Multi{l.Set, l.Index}.Contains(entry)
}

// Default returns the embedded list alone.
func Default() *Set {
	s, err := Parse(bytes.NewReader(defaultList))
	if err != nil {
		// embedded data is line oriented text; a scan failure is a build defect
		panic(err)
	}
	return s
}

// Load builds the list once at startup. A source that fails is logged and
// skipped; the embedded list is always present.
func Load(ctx context.Context, opts Options) *List {
	set := Default()

	if opts.Path != "" {
		merge(set, "file", opts.Path, func() (*Set, error) { return FromFile(opts.Path) })
	}
	if opts.URL != "" {
		merge(set, "url", opts.URL, func() (*Set, error) { return FromURL(ctx, opts.URL) })
	}
	if opts.Bucket != "" && opts.Object != "" && db.Objects != nil {
		merge(set, "s3", opts.Bucket+"/"+opts.Object, func() (*Set, error) {
			return FromObject(ctx, opts.Bucket, opts.Object)
		})
	}

	return &List{Set: set, Index: opts.Index}
}

func merge(set *Set, kind, location string, load func() (*Set, error)) {
	s, err := load()
	if err != nil {
		slog.Warn("Failed to load wordlist", "source", kind, "location", location, "err", err)
		return
	}
	set.Merge(s)
	slog.Info("Loaded wordlist", "source", kind, "location", location, "entries", s.Len())
}

func FromFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

func FromURL(ctx context.Context, url string) (*Set, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating wordlist request: %w", err)
	}
	req.Header.Set("User-Agent", clientAgent)

	resp, err := fetchClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching wordlist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching wordlist: unexpected status %d", resp.StatusCode)
	}

	return Parse(resp.Body)
}

func FromObject(ctx context.Context, bucket, object string) (*Set, error) {
	obj, err := db.GetObject(ctx, bucket, object)
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	return Parse(obj)
}
