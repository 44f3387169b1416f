package syntax_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"github.com/gosyntax/rcst/internal/testutil"
	"github.com/gosyntax/rcst/syntax"
)

// TestRoundtrip checks the central lossless invariant against every fixture
// under testdata/pp: printing a parsed file reproduces its source exactly,
// byte for byte, trivia included.
func TestRoundtrip(t *testing.T) {
	root := testutil.MustRepoRoot(t)
	matches, err := doublestar.FilepathGlob(filepath.Join(root, "testdata", "pp", "**", "*.src"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "expected at least one roundtrip fixture")

	for _, path := range matches {
		path := path
		name := strings.TrimPrefix(path, root+string(filepath.Separator))
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(path)
			require.NoError(t, err)

			file := syntax.Parse(string(src))
			var dest strings.Builder
			file.Print(&dest)

			if dest.String() != string(src) {
				diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
					A:        difflib.SplitLines(string(src)),
					B:        difflib.SplitLines(dest.String()),
					FromFile: "source",
					ToFile:   "printed",
					Context:  3,
				})
				t.Fatalf("roundtrip mismatch:\n%s", diff)
			}
		})
	}
}
