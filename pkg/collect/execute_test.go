package collect

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SkipsIgnoredAndBinaryFiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{
		"/proj/a.txt":       "hello",
		"/proj/b.bin":       string([]byte{0xff, 0xfe}),
		"/proj/c.dat":       string([]byte{0x80}),
		"/proj/.dumpignore": "b.bin\n",
	})

	summary, err := Run(fsys, Arguments{
		Root:      "/proj",
		Output:    "/proj/code_dump.txt",
		UseBanner: true,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Files)
	assert.Equal(t, 1, summary.Binary)
	assert.Equal(t, "//---------------------------------------------------\n"+
		"// File: /proj/a.txt\n"+
		"//---------------------------------------------------\n"+
		"hello\n", readOutput(t, fsys, "/proj/code_dump.txt"))
}

func TestRun_ExclusionPatterns(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{
		"/proj/README.md": "# readme",
		"/proj/data.json": "{}",
		"/proj/main.rs":   "fn main() {}",
	})

	summary, err := Run(fsys, Arguments{
		Root:    "/proj",
		Output:  "/out/dump.txt",
		Exclude: "*.md,*.json",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Files)
	assert.Equal(t, "\n// File: /proj/main.rs\nfn main() {}\n", readOutput(t, fsys, "/out/dump.txt"))
}

func TestRun_InvalidPatternTouchesNothing(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{"/proj/a.txt": "a"})

	_, err := Run(fsys, Arguments{
		Root:    "/proj",
		Output:  "/out/dump.txt",
		Exclude: "*.md,[abc",
	}, nil)
	require.Error(t, err)

	var patternErr *PatternError
	require.True(t, errors.As(err, &patternErr))
	assert.Equal(t, "[abc", patternErr.Pattern)

	exists, err := afero.Exists(fsys, "/out")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRun_ExcludesItsOwnOutput(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{
		"/proj/a.txt":    "a",
		"/proj/dump.txt": "previous run",
	})
	args := Arguments{Root: "/proj", Output: "/proj/dump.txt", UseBanner: true}

	first, err := Run(fsys, args, nil)
	require.NoError(t, err)
	firstOutput := readOutput(t, fsys, "/proj/dump.txt")

	second, err := Run(fsys, args, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Files)
	assert.Equal(t, first, second)
	assert.Equal(t, firstOutput, readOutput(t, fsys, "/proj/dump.txt"))
	assert.NotContains(t, firstOutput, "// File: /proj/dump.txt")
}

func TestRun_MissingRootWritesEmptyDump(t *testing.T) {
	fsys := afero.NewMemMapFs()

	summary, err := Run(fsys, Arguments{Root: "/nowhere", Output: "/dump.txt"}, nil)
	require.NoError(t, err)
	assert.Zero(t, summary.Files)
	assert.Empty(t, readOutput(t, fsys, "/dump.txt"))
}

func TestRun_CreateFailureIsWrapped(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, err := Run(fsys, Arguments{Root: "/proj", Output: "/out/dump.txt"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dump of /proj failed")
}
