package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hatchdotlol/cipherpass/pkg/db"
	"github.com/hatchdotlol/cipherpass/pkg/strength"
	"github.com/hatchdotlol/cipherpass/pkg/util"
	"github.com/hatchdotlol/cipherpass/pkg/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"DB_PATH", "WORDLIST_PATH", "WORDLIST_URL", "MINIO_ENDPOINT", "LOGGING_WEBHOOK", "MIN_ENTROPY"} {
		t.Setenv(k, "")
	}
	t.Cleanup(func() { db.CloseDB() })
}

func run(t *testing.T, args ...string) string {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func TestImportThenCheck(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("DB_PATH", filepath.Join(dir, "wordlist.db"))

	list := filepath.Join(dir, "leaked.txt")
	require.NoError(t, os.WriteFile(list, []byte("Zebra-Stripes-9\nhunter2\nhunter2\n\n"), 0o600))

	out := run(t, "import", list)
	assert.Contains(t, out, "Imported 2 new passwords (2 read, 2 indexed)")

	out = run(t, "import", list)
	assert.Contains(t, out, "Imported 0 new passwords (2 read, 2 indexed)")

	out = run(t, "check", "zebra-stripes-9")
	assert.Contains(t, out, "Compromised:  true")
	assert.Contains(t, out, "Online:       Instant (known password)")
}

func TestImportRequiresDBPath(t *testing.T) {
	clearEnv(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"import", "list.txt"})

	assert.ErrorContains(t, cmd.Execute(), "DB_PATH is not set")
}

func TestCheckOutput(t *testing.T) {
	clearEnv(t)

	out := run(t, "check", "Tr0ub4dor&3")
	assert.Contains(t, out, "Entropy:      72.1 bits")
	assert.Contains(t, out, "Score:        72/100 (success)")
	assert.Contains(t, out, "Compromised:  false")
	assert.Contains(t, out, "Nation state:")
}

func TestCheckSurvivesUnopenableIndex(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "/nonexistent-dir/sub/wordlist.db")

	out := run(t, "check", "Tr0ub4dor&3")
	assert.Contains(t, out, "Entropy:      72.1 bits")
}

func TestLoadEstimatorSkipsFailedBackends(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "/nonexistent-dir/sub/wordlist.db")
	// minio rejects endpoints that carry a path
	t.Setenv("MINIO_ENDPOINT", "minio.invalid/path")
	util.InitConfig()

	est, list := loadEstimator(context.Background())
	require.NotNil(t, est)
	require.NotNil(t, list)

	assert.Nil(t, list.Index)
	assert.Nil(t, db.Db)
	assert.Nil(t, db.Objects)
	assert.Equal(t, wordlist.Default().Len(), list.Len())
	assert.True(t, est.IsCompromised("letmein"))
}

func TestGeneratePassphrase(t *testing.T) {
	clearEnv(t)

	lines := strings.Split(strings.TrimSpace(run(t, "generate", "--words", "12")), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, strings.Fields(lines[0]), 12)
	assert.Equal(t, "Entropy: 128.0 bits", lines[1])
}

func TestGenerateHash(t *testing.T) {
	clearEnv(t)

	lines := strings.Split(strings.TrimSpace(run(t, "generate", "--length", "20", "--symbols=false", "--hash")), "\n")
	require.Len(t, lines, 3)

	password := lines[0]
	assert.Len(t, password, 20)
	assert.Contains(t, lines[1], "GPU crack time:")

	hash, ok := strings.CutPrefix(lines[2], "bcrypt: ")
	require.True(t, ok)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)))
}

func TestGenerateRejectsEmptyCharset(t *testing.T) {
	clearEnv(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"generate", "--lower=false", "--upper=false", "--numbers=false", "--symbols=false"})

	assert.ErrorContains(t, cmd.Execute(), "select at least one character set")
}

func TestDescribeUsesWordlist(t *testing.T) {
	clean := strength.NewEstimator(wordlist.NewSet(), 60)
	assert.NotContains(t, describe(clean, "Tr0ub4dor&3"), "Instant")

	leaked := strength.NewEstimator(wordlist.NewSet("tr0ub4dor&3"), 60)
	assert.Equal(t, "Entropy: 72.1 bits, GPU crack time: Instant", describe(leaked, "Tr0ub4dor&3"))
}
