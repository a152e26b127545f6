package diagnostics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncc/internal/source"
)

func TestBagCounts(t *testing.T) {
	bag := NewBag()
	assert.False(t, bag.HasErrors())

	bag.Add(NewError("bad token"))
	bag.Add(NewWarning("suspicious"))
	bag.Add(NewInfo("note"))

	assert.True(t, bag.HasErrors())
	assert.Equal(t, 1, bag.ErrorCount())
	assert.Equal(t, 1, bag.WarningCount())
	assert.Len(t, bag.Diagnostics(), 3)

	bag.Clear()
	assert.False(t, bag.HasErrors())
	assert.Empty(t, bag.Diagnostics())
}

func TestBuilders(t *testing.T) {
	loc := source.NewLocation("main.c", 2, 7)
	d := NewError("missing ending").
		WithCode("L0001").
		WithLocation(loc).
		WithHelp("close the comment with */")

	assert.Equal(t, Error, d.Severity)
	assert.Equal(t, "L0001", d.Code)
	require.NotNil(t, d.Location)
	assert.Equal(t, "main.c:2:7", d.Location.String())
	assert.Equal(t, "close the comment with */", d.Help)
}

func TestEmitterFormat(t *testing.T) {
	var buf bytes.Buffer
	bag := NewBag()
	bag.Add(NewError("missing ending").
		WithCode("L0001").
		WithLocation(source.NewLocation("main.c", 2, 7)))
	bag.EmitAll(&buf)

	out := buf.String()
	assert.Contains(t, out, "error[L0001]")
	assert.Contains(t, out, "missing ending")
	assert.Contains(t, out, "at (main.c:2:7)")
}

func TestEmitterHelpLine(t *testing.T) {
	var buf bytes.Buffer
	NewEmitter(&buf).Emit(NewWarning("odd spacing").WithHelp("run the formatter"))

	out := buf.String()
	assert.Contains(t, out, "warning")
	assert.Contains(t, out, "  help: run the formatter")
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "hint", Hint.String())
}
