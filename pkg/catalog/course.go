package catalog

import (
	"fmt"
	"io"
	"strings"
)

// Course represents a single catalog entry: its ID, display name and prerequisite IDs.
// The zero value is an empty placeholder course.
type Course struct {
	ID            string
	Name          string
	Prerequisites []string // Kept in the order they were added
}

// NewCourse creates a course with no prerequisites
func NewCourse(id, name string) Course {
	return Course{ID: id, Name: name}
}

// AddPrerequisite appends a prerequisite ID. Duplicates and unknown IDs are accepted as-is.
func (c *Course) AddPrerequisite(id string) {
	c.Prerequisites = append(c.Prerequisites, id)
}

// String returns the "<ID>, <Name>" summary line
func (c Course) String() string {
	return fmt.Sprintf("%s, %s", c.ID, c.Name)
}

// Describe writes the summary line and, if withPrereqs is set, a
// "Prerequisites: " line listing the prerequisite IDs separated by ", ".
func (c Course) Describe(w io.Writer, withPrereqs bool) error {
	if _, err := fmt.Fprintln(w, c.String()); err != nil {
		return err
	}
	if !withPrereqs {
		return nil
	}

	_, err := fmt.Fprintf(w, "Prerequisites: %s\n", strings.Join(c.Prerequisites, ", "))
	return err
}
