// Package review implements the interactive terminal pass where the user
// checks and corrects extracted form fields before they reach the ledger.
package review

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/pta-tools/reimb-parser/internal/common"
)

// maxValueWidth keeps long OCR artifacts from blowing up the table.
const maxValueWidth = 50

type Session struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewScanner(in), out: out}
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// PrintTable renders the form's fields in display order.
func (s *Session) PrintTable(f *Form, title string) {
	fmt.Fprintf(s.out, "\n=== %s ===\n", title)
	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Field", "Value"})
	table.SetColWidth(maxValueWidth)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, label := range f.Labels() {
		value := f.Get(label)
		if value == "" {
			value = "(empty)"
		}
		table.Append([]string{label, value})
	}
	table.Render()
}

// EditField prompts for a new value for the named field. An empty response
// keeps the current value. Unknown names list the available fields.
func (s *Session) EditField(f *Form, name string) {
	if !f.Has(name) {
		fmt.Fprintf(s.out, "Field %q not found. Available fields:\n", name)
		for _, label := range f.Labels() {
			fmt.Fprintf(s.out, "  - %s\n", label)
		}
		return
	}

	current := f.Get(name)
	if current == "" {
		current = "(empty)"
	}
	fmt.Fprintf(s.out, "\nCurrent value for %q: %s\n", name, current)
	fmt.Fprint(s.out, "Enter new value (or press Enter to keep current): ")
	line, ok := s.readLine()
	if !ok || line == "" {
		fmt.Fprintln(s.out, "Kept existing value.")
		return
	}
	f.Set(name, line)
	fmt.Fprintf(s.out, "Updated %q to: %s\n", name, line)
}

// ReviewAndEdit loops until the user accepts the form. "ok" or a blank line
// accepts, "raw" dumps the OCR text, "quit" aborts with ErrUserCancelled, and
// anything else is taken as a field name to edit.
func (s *Session) ReviewAndEdit(f *Form) error {
	for {
		s.PrintTable(f, "Extracted Data")
		fmt.Fprintln(s.out, "\nOptions:")
		fmt.Fprintln(s.out, "  - Enter a field name to edit it")
		fmt.Fprintln(s.out, "  - Type 'ok' or press Enter to continue")
		fmt.Fprintln(s.out, "  - Type 'raw' to see raw OCR text")
		fmt.Fprintln(s.out, "  - Type 'quit' to cancel")
		fmt.Fprint(s.out, "\nEdit a field? ")

		line, ok := s.readLine()
		if !ok {
			return common.ErrUserCancelled
		}
		switch strings.ToLower(line) {
		case "", "ok":
			return nil
		case "quit":
			return common.ErrUserCancelled
		case "raw":
			if f.RawText() == "" {
				fmt.Fprintln(s.out, "Raw text not available.")
				continue
			}
			fmt.Fprintln(s.out, "\n=== Raw OCR Text ===")
			fmt.Fprintln(s.out, f.RawText())
			fmt.Fprintln(s.out, "=== End Raw Text ===")
		default:
			s.EditField(f, line)
		}
	}
}

// SelectFromList shows a numbered menu and returns the chosen option. The
// user may answer with a number, the option text, or (when allowOther is
// set) a custom value.
func (s *Session) SelectFromList(options []string, prompt string, allowOther bool) (string, error) {
	fmt.Fprintf(s.out, "\n%s:\n", prompt)
	for i, option := range options {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, option)
	}
	if allowOther {
		fmt.Fprintf(s.out, "  %d. Other (enter custom value)\n", len(options)+1)
	}

	for {
		fmt.Fprint(s.out, "\n> ")
		line, ok := s.readLine()
		if !ok {
			return "", common.ErrUserCancelled
		}

		if idx, err := strconv.Atoi(line); err == nil {
			if idx >= 1 && idx <= len(options) {
				return options[idx-1], nil
			}
			if allowOther && idx == len(options)+1 {
				fmt.Fprint(s.out, "Enter custom value: ")
				custom, ok := s.readLine()
				if !ok {
					return "", common.ErrUserCancelled
				}
				return custom, nil
			}
			fmt.Fprintf(s.out, "Please enter a number between 1 and %d\n", len(options)+boolToInt(allowOther))
			continue
		}

		for _, option := range options {
			if strings.EqualFold(option, line) {
				return option, nil
			}
		}
		if allowOther && line != "" {
			fmt.Fprintf(s.out, "Use %q as custom value? (y/n): ", line)
			answer, ok := s.readLine()
			if !ok {
				return "", common.ErrUserCancelled
			}
			if strings.EqualFold(answer, "y") {
				return line, nil
			}
		}
		fmt.Fprintln(s.out, "Invalid selection. Please enter a number or valid option.")
	}
}

// Ask prompts for a free-form value, used when no pick list is configured.
func (s *Session) Ask(prompt string) (string, error) {
	fmt.Fprintf(s.out, "\n%s: ", prompt)
	line, ok := s.readLine()
	if !ok {
		return "", common.ErrUserCancelled
	}
	return line, nil
}

// Confirm asks a yes/no question; a blank answer takes the default.
func (s *Session) Confirm(prompt string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(s.out, "\n%s (%s): ", prompt, hint)
	line, ok := s.readLine()
	if !ok || line == "" {
		return def
	}
	line = strings.ToLower(line)
	return line == "y" || line == "yes"
}

func (s *Session) Success(msg string) { fmt.Fprintf(s.out, "\n[OK] %s\n", msg) }
func (s *Session) Info(msg string)    { fmt.Fprintf(s.out, "\n[INFO] %s\n", msg) }
func (s *Session) Failure(msg string) { fmt.Fprintf(s.out, "\n[ERROR] %s\n", msg) }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
