package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"coursectl/pkg/catalog"
	"coursectl/pkg/loader"

	"github.com/charmbracelet/lipgloss"
)

// Menu selections
const (
	OptionLoad     = 1
	OptionPrintAll = 2
	OptionPrintOne = 3
	OptionExit     = 9
)

// Literal messages printed by the menu
const (
	MsgLoaded      = "Data Loaded"
	MsgOpenFailed  = "Error in opening file"
	MsgSchedule    = "Here is a sample schedule"
	MsgAskCourse   = "What course would you like to know about?"
	MsgFarewell    = "Thank you for using the course planner!"
	msgInvalidTmpl = "%s is not a valid option.\n"
)

// Shell is the numbered text menu. It owns the course tree for its whole lifetime.
type Shell struct {
	in   *bufio.Reader
	out  io.Writer
	path string
	tree *catalog.Tree

	headerStyle lipgloss.Style
}

// New creates a shell reading selections from in and writing to out.
// Load Data always reads from path.
func New(in io.Reader, out io.Writer, path string) *Shell {
	r := lipgloss.NewRenderer(out)
	return &Shell{
		in:          bufio.NewReader(in),
		out:         out,
		path:        path,
		tree:        catalog.NewTree(),
		headerStyle: r.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
	}
}

// WithAccent recolors the menu header
func (s *Shell) WithAccent(color string) *Shell {
	if color != "" {
		s.headerStyle = s.headerStyle.Foreground(lipgloss.Color(color))
	}
	return s
}

// Tree exposes the shell's course tree
func (s *Shell) Tree() *catalog.Tree {
	return s.tree
}

// Run shows the menu until Exit is chosen or the input ends.
// Invalid selections, missing files and unknown courses are reported and the loop continues;
// only read or write failures are returned.
func (s *Shell) Run() error {
	for {
		if err := s.printMenu(); err != nil {
			return err
		}

		line, err := s.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		done, err := s.dispatch(strings.TrimSpace(line))
		if err != nil || done {
			return err
		}
	}
}

// dispatch runs one menu selection and reports whether the loop should end.
func (s *Shell) dispatch(selection string) (bool, error) {
	choice, convErr := strconv.Atoi(selection)
	if convErr != nil {
		return false, s.printf(msgInvalidTmpl, selection)
	}
	slog.Debug("Menu selection.", "choice", choice)

	switch choice {
	case OptionLoad:
		return false, s.load()
	case OptionPrintAll:
		if err := s.println(MsgSchedule); err != nil {
			return false, err
		}
		return false, s.tree.PrintAll(s.out)
	case OptionPrintOne:
		if err := s.println(MsgAskCourse); err != nil {
			return false, err
		}
		id, err := s.readLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		return false, s.tree.PrintOne(s.out, catalog.NormalizeID(id))
	case OptionExit:
		return true, s.println(MsgFarewell)
	default:
		return false, s.printf(msgInvalidTmpl, strconv.Itoa(choice))
	}
}

func (s *Shell) load() error {
	n, err := loader.Load(s.path, s.tree)
	if err != nil {
		slog.Debug("Load failed.", "path", s.path, "error", err)
		return s.println(MsgOpenFailed)
	}
	slog.Debug("Load finished.", "courses", n)
	return s.println(MsgLoaded)
}

func (s *Shell) printMenu() error {
	lines := []string{
		s.headerStyle.Render("Menu: "),
		"1. Load Data",
		"2. Print Courses",
		"3. Print Specific Course",
		"9. Exit",
		"What would you like to do?",
	}
	for _, l := range lines {
		if err := s.println(l); err != nil {
			return err
		}
	}
	return nil
}

// readLine returns the next line without its line ending.
// An unterminated last line is still returned; io.EOF only once nothing is left.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) println(msg string) error {
	_, err := fmt.Fprintln(s.out, msg)
	return err
}

func (s *Shell) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(s.out, format, args...)
	return err
}
