package cmdline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCmdLine registers the driver's option set.
func newTestCmdLine() *CmdLine {
	cl := New()
	cl.Add("", "--help", "Show this help info.", NoValue, "")
	cl.Add("", "--version", "Show version number.", NoValue, "")
	cl.Add("-o", "", "Place the output into <file>.", ValueAfterSpace, "file")
	cl.Add("-D", "", "Add macro definition.", ValueAttachedOrSpace, "macro[=<value>]")
	cl.Add("-I", "", "Add the header file index path.", ValueAttachedOrSpace, "path")
	cl.Add("-v", "", "Display the programs invoked by the compiler.", NoValue, "")
	cl.Add("-std=", "", "Set language standards for use.", ValueAttached, "")
	return cl
}

func TestFlagAndPositionals(t *testing.T) {
	cl := newTestCmdLine()
	require.NoError(t, cl.Parse([]string{"-v", "main.c", "util.c"}))

	assert.True(t, cl.Has("-v"))
	assert.False(t, cl.Has("--help"))
	assert.Equal(t, []string{"main.c", "util.c"}, cl.Others)
}

func TestValueAfterSpace(t *testing.T) {
	cl := newTestCmdLine()
	require.NoError(t, cl.Parse([]string{"-o", "out.s", "main.c"}))

	values, ok := cl.ValuesOf("-o")
	require.True(t, ok)
	assert.Equal(t, []string{"out.s"}, values)
	assert.Equal(t, []string{"main.c"}, cl.Others)
}

func TestValueAfterSpaceMissing(t *testing.T) {
	cl := newTestCmdLine()
	err := cl.Parse([]string{"main.c", "-o"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-o: missing value")
}

func TestValueAttached(t *testing.T) {
	cl := newTestCmdLine()
	require.NoError(t, cl.Parse([]string{"-std=c99", "main.c"}))

	values, ok := cl.ValuesOf("-std=")
	require.True(t, ok)
	assert.Equal(t, []string{"c99"}, values)
}

func TestValueAttachedMissing(t *testing.T) {
	cl := newTestCmdLine()
	err := cl.Parse([]string{"-std="})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing value")
}

func TestValueAttachedOrSpace(t *testing.T) {
	cl := newTestCmdLine()
	require.NoError(t, cl.Parse([]string{"-DFOO", "-D", "BAR=1", "-Iinclude"}))

	defines, ok := cl.ValuesOf("-D")
	require.True(t, ok)
	assert.Equal(t, []string{"FOO", "BAR=1"}, defines)

	paths, ok := cl.ValuesOf("-I")
	require.True(t, ok)
	assert.Equal(t, []string{"include"}, paths)
}

func TestUnknownValuesOf(t *testing.T) {
	cl := newTestCmdLine()
	require.NoError(t, cl.Parse([]string{"main.c"}))

	_, ok := cl.ValuesOf("-X")
	assert.False(t, ok)
	_, ok = cl.ValuesOf("-D")
	assert.False(t, ok)
}

func TestAddRejectsIncompleteRegistrations(t *testing.T) {
	cl := New()
	cl.Add("", "", "help text", NoValue, "")
	cl.Add("-q", "", "", NoValue, "")
	assert.Equal(t, "", cl.Help())
}

func TestAddIgnoresDuplicates(t *testing.T) {
	cl := New()
	cl.Add("-v", "", "Verbose output.", NoValue, "")
	cl.Add("-v", "", "Verbose output, again.", NoValue, "")
	assert.Equal(t, 1, strings.Count(cl.Help(), "-v"))
}

func TestHelpLayout(t *testing.T) {
	cl := newTestCmdLine()
	help := cl.Help()

	assert.Contains(t, help, "  --help")
	assert.Contains(t, help, "  -o <file>")
	assert.Contains(t, help, "  -D[ ]<macro[=<value>]>")
	assert.Contains(t, help, "  -std=<value>")
	assert.False(t, strings.HasSuffix(help, "\n"))

	// Help text starts at column 25.
	for _, line := range strings.Split(help, "\n") {
		if strings.HasPrefix(line, "  --help") {
			assert.Equal(t, "Show this help info.", line[25:])
		}
	}
}
