package catalog

import (
	"fmt"
	"io"
)

// NotFoundMessage is printed by PrintOne when no course matches.
const NotFoundMessage = "Course could not be found."

type node struct {
	course      Course
	left, right *node
}

// Tree is an unbalanced binary search tree of courses keyed by ID.
// Smaller IDs go left; equal and larger IDs go right, so duplicate IDs
// are kept as separate nodes. The zero value is an empty tree.
type Tree struct {
	root *node
}

// NewTree returns an empty tree
func NewTree() *Tree {
	return &Tree{}
}

// Empty reports whether nothing has been inserted yet
func (t *Tree) Empty() bool {
	return t.root == nil
}

// Insert adds the course as a new leaf. It never fails and never replaces an existing node.
func (t *Tree) Insert(c Course) {
	n := &node{course: c}
	if t.root == nil {
		t.root = n
		return
	}

	cur := t.root
	for {
		if c.ID < cur.course.ID {
			if cur.left == nil {
				cur.left = n
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				return
			}
			cur = cur.right
		}
	}
}

// Lookup descends from the root and returns the first course whose ID equals id.
// With duplicate IDs this is always the one inserted first.
func (t *Tree) Lookup(id string) (Course, bool) {
	cur := t.root
	for cur != nil {
		if cur.course.ID == id {
			return cur.course, true
		}
		if id < cur.course.ID {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return Course{}, false
}

// Walk visits courses in ascending ID order until fn returns false.
// It uses an explicit stack since sorted input degrades the tree into a list.
func (t *Tree) Walk(fn func(Course) bool) {
	var stack []*node
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(cur.course) {
			return
		}
		cur = cur.right
	}
}

// PrintAll writes every course's summary line in ID order
func (t *Tree) PrintAll(w io.Writer) error {
	var err error
	t.Walk(func(c Course) bool {
		err = c.Describe(w, false)
		return err == nil
	})
	return err
}

// PrintOne writes the full description of the course with the given ID,
// or NotFoundMessage when there is none.
func (t *Tree) PrintOne(w io.Writer, id string) error {
	c, ok := t.Lookup(id)
	if !ok {
		_, err := fmt.Fprintln(w, NotFoundMessage)
		return err
	}
	return c.Describe(w, true)
}
