package shell

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `MATH201,Discrete Mathematics
CSCI300,Introduction to Algorithms,CSCI200,MATH201
CSCI100,Introduction to Computer Science
CSCI200,Data Structures,CSCI101
csci999,Lowercase Course
`

func newTestShell(t *testing.T, input string) (*Shell, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0644))

	var out bytes.Buffer
	return New(strings.NewReader(input), &out, path), &out
}

func TestShell_LoadAndPrintAll(t *testing.T) {
	sh, out := newTestShell(t, "1\n2\n9\n")
	require.NoError(t, sh.Run())

	got := out.String()
	assert.Contains(t, got, "Data Loaded\n")
	assert.Contains(t, got, "Here is a sample schedule\n"+
		"CSCI100, Introduction to Computer Science\n"+
		"CSCI200, Data Structures\n"+
		"CSCI300, Introduction to Algorithms\n"+
		"MATH201, Discrete Mathematics\n"+
		"csci999, Lowercase Course\n")
	assert.True(t, strings.HasSuffix(got, "Thank you for using the course planner!\n"))
}

func TestShell_PrintSpecificCourseNormalizesCase(t *testing.T) {
	sh, out := newTestShell(t, "1\n3\ncsci300\n3\nCSCI300\n9\n")
	require.NoError(t, sh.Run())

	want := "CSCI300, Introduction to Algorithms\nPrerequisites: CSCI200, MATH201\n"
	assert.Equal(t, 2, strings.Count(out.String(), want))
}

func TestShell_LowercaseStoredIDIsNotFound(t *testing.T) {
	sh, out := newTestShell(t, "1\n3\ncsci999\n9\n")
	require.NoError(t, sh.Run())

	assert.Contains(t, out.String(), "What course would you like to know about?\nCourse could not be found.\n")
	assert.NotContains(t, out.String(), "Lowercase Course")

	_, ok := sh.Tree().Lookup("csci999")
	assert.True(t, ok, "entry is stored but unreachable through the menu")
}

func TestShell_LookupBeforeLoad(t *testing.T) {
	sh, out := newTestShell(t, "3\nCSCI100\n9\n")
	require.NoError(t, sh.Run())
	assert.Contains(t, out.String(), "Course could not be found.\n")
}

func TestShell_InvalidOption(t *testing.T) {
	sh, out := newTestShell(t, "1\n7\n9\n")
	require.NoError(t, sh.Run())

	assert.Equal(t, 1, strings.Count(out.String(), "is not a valid option."))
	assert.Contains(t, out.String(), "7 is not a valid option.\n")

	var all bytes.Buffer
	require.NoError(t, sh.Tree().PrintAll(&all))
	assert.Equal(t, 5, strings.Count(all.String(), "\n"))
}

func TestShell_NonNumericOption(t *testing.T) {
	sh, out := newTestShell(t, "abc\n-4\n9\n")
	require.NoError(t, sh.Run())

	assert.Contains(t, out.String(), "abc is not a valid option.\n")
	assert.Contains(t, out.String(), "-4 is not a valid option.\n")
	assert.True(t, sh.Tree().Empty())
}

func TestShell_MissingFile(t *testing.T) {
	var out bytes.Buffer
	sh := New(strings.NewReader("1\n2\n9\n"), &out, filepath.Join(t.TempDir(), "missing.csv"))
	require.NoError(t, sh.Run())

	assert.Contains(t, out.String(), "Error in opening file\n")
	assert.NotContains(t, out.String(), "Data Loaded")
	assert.Contains(t, out.String(), "Here is a sample schedule\nMenu: ")
}

func TestShell_EndOfInputStopsLoop(t *testing.T) {
	sh, out := newTestShell(t, "1\n2")
	require.NoError(t, sh.Run())

	assert.Contains(t, out.String(), "Here is a sample schedule\n")
	assert.NotContains(t, out.String(), "Thank you for using the course planner!")
}

func TestShell_ExitStopsReading(t *testing.T) {
	sh, out := newTestShell(t, "9\n1\n")
	require.NoError(t, sh.Run())

	assert.NotContains(t, out.String(), "Data Loaded")
	assert.True(t, sh.Tree().Empty())
}

func TestShell_Menu(t *testing.T) {
	sh, out := newTestShell(t, "9\n")
	require.NoError(t, sh.Run())

	assert.Equal(t, "Menu: \n"+
		"1. Load Data\n"+
		"2. Print Courses\n"+
		"3. Print Specific Course\n"+
		"9. Exit\n"+
		"What would you like to do?\n"+
		"Thank you for using the course planner!\n", out.String())
}

func TestShell_ReadErrorReportsOpenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.csv")
	content := "CSCI100,Intro\n" + strings.Repeat("x", 2*1024*1024) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	var out bytes.Buffer
	sh := New(strings.NewReader("1\n9\n"), &out, path)
	require.NoError(t, sh.Run())

	assert.Contains(t, out.String(), "Error in opening file\n")
	assert.NotContains(t, out.String(), "Data Loaded")
	assert.True(t, sh.Tree().Empty())
}

func TestShell_TrailingTextIsInvalid(t *testing.T) {
	sh, out := newTestShell(t, "1abc\n9\n")
	require.NoError(t, sh.Run())

	assert.Contains(t, out.String(), "1abc is not a valid option.\n")
	assert.NotContains(t, out.String(), "Data Loaded")
	assert.True(t, sh.Tree().Empty())
}

// failingWriter accepts limit bytes and then fails every write
type failingWriter struct {
	limit int
}

var errWriteFailed = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, errWriteFailed
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestShell_WriteErrorsAreReturned(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
	}{
		{"menu", "9\n", 0},
		{"invalid option", "7\n9\n", len(menuText)},
		{"farewell", "9\n", len(menuText)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := New(strings.NewReader(tt.input), &failingWriter{limit: tt.limit}, "unused.csv")
			require.ErrorIs(t, sh.Run(), errWriteFailed)
		})
	}
}

const menuText = "Menu: \n" +
	"1. Load Data\n" +
	"2. Print Courses\n" +
	"3. Print Specific Course\n" +
	"9. Exit\n" +
	"What would you like to do?\n"
