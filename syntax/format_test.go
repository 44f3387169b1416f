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

// TestFormatWithStyleGuide walks testdata/style and pairs every *.src file
// that is not itself a *.fmt.src with its sibling *.fmt.src holding the
// expected formatted print (trailing newline trimmed), then checks that
// formatting that output again changes nothing. The *.fmt.src files are
// skipped here; TestFormatWithStyleGuideIdempotent covers them.
func TestFormatWithStyleGuide(t *testing.T) {
	root := testutil.MustRepoRoot(t)
	matches, err := doublestar.FilepathGlob(filepath.Join(root, "testdata", "style", "**", "*.src"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "expected at least one style fixture")

	for _, path := range matches {
		path := path
		if strings.HasSuffix(path, ".fmt.src") {
			continue
		}
		name := strings.TrimPrefix(path, root+string(filepath.Separator))
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(path)
			require.NoError(t, err)

			expectedPath := strings.TrimSuffix(path, ".src") + ".fmt.src"
			expected, err := os.ReadFile(expectedPath)
			require.NoError(t, err, "missing expected output %s", expectedPath)

			file := syntax.Parse(string(src))
			syntax.FormatWithStyleGuide(&file)
			var dest strings.Builder
			file.Print(&dest)

			want := strings.TrimRight(string(expected), "\n")
			got := strings.TrimRight(dest.String(), "\n")
			if got != want {
				diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
					A:        difflib.SplitLines(want),
					B:        difflib.SplitLines(got),
					FromFile: "expected",
					ToFile:   "formatted",
					Context:  3,
				})
				t.Fatalf("format mismatch:\n%s", diff)
			}

			// format idempotence: re-parsing and re-formatting the
			// already-formatted output must be a no-op.
			again := syntax.Parse(got)
			syntax.FormatWithStyleGuide(&again)
			var dest2 strings.Builder
			again.Print(&dest2)
			require.Equal(t, got, dest2.String(), "formatting is not idempotent")
		})
	}
}

// TestFormatWithStyleGuideIdempotent walks the *.fmt.src files directly
// (canonical output already): formatting must leave them unchanged.
func TestFormatWithStyleGuideIdempotent(t *testing.T) {
	root := testutil.MustRepoRoot(t)
	matches, err := doublestar.FilepathGlob(filepath.Join(root, "testdata", "style", "**", "*.fmt.src"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "expected at least one canonical fixture")

	for _, path := range matches {
		path := path
		name := strings.TrimPrefix(path, root+string(filepath.Separator))
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(path)
			require.NoError(t, err)

			file := syntax.Parse(string(src))
			syntax.FormatWithStyleGuide(&file)
			var dest strings.Builder
			file.Print(&dest)

			want := strings.TrimRight(string(src), "\n")
			got := strings.TrimRight(dest.String(), "\n")
			require.Equal(t, want, got)
		})
	}
}

// TestMinify minifies a nested-mod example: minifying drops every
// optional trivia run (the leading block comment, the inner indentation,
// the trailing line comment) while keeping the single space after each
// `mod` keyword that stops it from fusing with the module's name.
func TestMinify(t *testing.T) {
	src := " /* w */ mod foo {\n        mod barrr ; // a\n    }"
	file := syntax.Parse(src)
	syntax.Minify(&file)
	var dest strings.Builder
	file.Print(&dest)
	require.Equal(t, "mod foo{mod barrr;}", dest.String())
}

// TestMinifyIsCommentFree checks the general Minify property directly:
// no line comment survives, and the result reparses to itself.
func TestMinifyIsCommentFree(t *testing.T) {
	src := "// leading\nfn f() {\n    // body comment\n    let x = 1; // trailing\n    x\n}\n"
	file := syntax.Parse(src)
	syntax.Minify(&file)
	var dest strings.Builder
	file.Print(&dest)
	minified := dest.String()

	require.NotContains(t, minified, "//")

	reparsed := syntax.Parse(minified)
	var dest2 strings.Builder
	reparsed.Print(&dest2)
	require.Equal(t, minified, dest2.String())
}
