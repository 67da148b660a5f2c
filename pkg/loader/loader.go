package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"coursectl/pkg/catalog"
)

// DefaultPath is the data file read when no other path is configured
const DefaultPath = "CS 300 ABCU_Advising_Program_Input.csv"

// ErrSourceUnavailable is returned when the data source cannot be opened
var ErrSourceUnavailable = errors.New("error in opening file")

// maxLineSize bounds a single record line
const maxLineSize = 1024 * 1024

// Load reads all courses from path and inserts them into t, returning how many were added.
// Files ending in .html or .htm are read as an HTML table, anything else as comma-separated lines.
// The tree is only touched once the whole source has been read.
func Load(path string, t *catalog.Tree) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer file.Close()

	var courses []catalog.Course
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		courses, err = ParseHTML(file)
	default:
		courses, err = ParseLines(file)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	for _, c := range courses {
		t.Insert(c)
	}

	slog.Debug("Catalog loaded.", "path", path, "courses", len(courses))
	return len(courses), nil
}

// ParseLines parses every line of r with ParseLine. Blank lines are not skipped.
func ParseLines(r io.Reader) ([]catalog.Course, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var courses []catalog.Course
	for scanner.Scan() {
		courses = append(courses, ParseLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}

// ParseLine turns "ID,Name,Prereq1,Prereq2,..." into a course.
// Missing ID or name fields become empty strings. A single trailing comma
// does not add an empty prerequisite, but empty fields in between do.
func ParseLine(line string) catalog.Course {
	line = strings.TrimSuffix(line, "\r")
	fields := strings.Split(line, ",")

	if len(fields) > 2 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}

	course := catalog.NewCourse(field(fields, 0), field(fields, 1))
	for i := 2; i < len(fields); i++ {
		course.AddPrerequisite(fields[i])
	}
	return course
}

func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
