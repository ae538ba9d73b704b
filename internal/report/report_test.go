package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jpsleep/sleepcheck/internal/disorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestBuild_EmptyLabels(t *testing.T) {
	doc := Build(nil, Options{GeneratedAt: fixedTime})

	assert.Empty(t, doc.Blocks)
	assert.Equal(t, introNone, doc.Intro)
	assert.Equal(t, GeneralTips(), doc.Tips)
	assert.Len(t, doc.Tips, 5)
	assert.NotEmpty(t, doc.Disclaimer)
	assert.False(t, doc.HasNotes())
}

func TestBuild_BlocksFollowLabelOrder(t *testing.T) {
	labels := []disorder.Label{disorder.LabelNarcolepsy, disorder.LabelInsomnia, disorder.LabelSleepAnxiety}
	doc := Build(labels, Options{GeneratedAt: fixedTime})

	require.Len(t, doc.Blocks, 3)
	assert.Equal(t, introDetected, doc.Intro)
	for i, l := range labels {
		e := disorder.MustLookup(l)
		assert.Equal(t, string(l), doc.Blocks[i].Title)
		assert.Equal(t, e.Definition, doc.Blocks[i].Definition)
		assert.Equal(t, e.Tip, doc.Blocks[i].Tip)
	}
}

func TestBuild_UnknownLabelPanics(t *testing.T) {
	assert.Panics(t, func() {
		Build([]disorder.Label{"Sleepwalking"}, Options{})
	})
}

func TestBuild_CopiesNotes(t *testing.T) {
	notes := []string{"Go to bed earlier."}
	doc := Build(nil, Options{Notes: notes, Summary: "Mostly fine."})
	notes[0] = "changed"

	assert.True(t, doc.HasNotes())
	assert.Equal(t, "Go to bed earlier.", doc.Notes[0])
}

func TestRender_ContainsSectionsInOrder(t *testing.T) {
	doc := Build([]disorder.Label{disorder.LabelInsomnia, disorder.LabelNarcolepsy}, Options{GeneratedAt: fixedTime})

	var buf bytes.Buffer
	require.NoError(t, render(&buf, doc, renderOptions{}))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "%PDF-"))
	ins := strings.Index(out, "(Insomnia)")
	nar := strings.Index(out, "(Narcolepsy)")
	tips := strings.Index(out, "(Tips for Healthy Sleep)")
	assert.Greater(t, ins, 0)
	assert.Greater(t, nar, ins)
	assert.Greater(t, tips, nar)
}

func TestRender_EmptyLabelsHasTipsOnly(t *testing.T) {
	doc := Build(nil, Options{GeneratedAt: fixedTime})

	var buf bytes.Buffer
	require.NoError(t, render(&buf, doc, renderOptions{}))
	out := buf.String()

	assert.Contains(t, out, "(Tips for Healthy Sleep)")
	for _, l := range disorder.AllLabels() {
		assert.NotContains(t, out, "("+string(l)+")")
	}
}

func TestRender_Paginates(t *testing.T) {
	notes := make([]string, 80)
	for i := range notes {
		notes[i] = fmt.Sprintf("Note number %d about keeping a steady bedtime.", i)
	}
	doc := Build(disorder.AllLabels(), Options{GeneratedAt: fixedTime, Notes: notes})

	var buf bytes.Buffer
	require.NoError(t, render(&buf, doc, renderOptions{}))
	assert.Contains(t, buf.String(), "(Page 2)")
}

func TestBytes(t *testing.T) {
	b, err := Bytes(Build([]disorder.Label{disorder.LabelInsomnia}, Options{GeneratedAt: fixedTime}))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, WriteFile(path, Build([]disorder.Label{disorder.LabelInsomnia}, Options{GeneratedAt: fixedTime})))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestWriteFile_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", DefaultFileName)
	err := WriteFile(path, Build(nil, Options{}))

	var exportErr *ExportError
	require.True(t, errors.As(err, &exportErr), "got %T", err)
	assert.Equal(t, path, exportErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMarkdown(t *testing.T) {
	doc := Build([]disorder.Label{disorder.LabelSleepAnxiety}, Options{
		GeneratedAt: fixedTime,
		Summary:     "Stress looks like the main driver.",
		Notes:       []string{"Try a wind-down routine."},
	})
	md := Markdown(doc)

	assert.True(t, strings.HasPrefix(md, "# "+title))
	assert.Contains(t, md, "## Sleep Anxiety")
	assert.Contains(t, md, "## Personal Notes")
	assert.Contains(t, md, "- Try a wind-down routine.")
	assert.Less(t, strings.Index(md, "## Sleep Anxiety"), strings.Index(md, "## "+tipsHeading))
}
