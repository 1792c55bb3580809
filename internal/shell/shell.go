// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shell is the interactive front end of a grade session. It reads
// one command per line, applies it to the session, and re-renders the course
// table and summary after every change. Bad input produces a message and the
// loop continues; end of input ends the loop.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pdiddy/transcript-engine/internal/report"
	"github.com/pdiddy/transcript-engine/internal/session"
	"github.com/pdiddy/transcript-engine/pkg/types"
)

const prompt = "> "

const helpText = `Commands:
  list                       show the course table
  summary                    show total credits and average
  edit LABEL GRADE           change the grade of a course
  whatif LABEL GRADE         show the average a grade change would give
  add LABEL,GRADE,CREDITS    add an estimated course
  delete LABEL               remove a course
  restore                    discard all changes
  export [yaml|json|xlsx]    write a report of the current courses
  help                       show this list
  quit                       leave the session`

// Options configures a Shell.
type Options struct {
	// Source names the transcript document in reports.
	Source string

	// Report sets the output directory and default format of export.
	Report types.ReportConfig

	// NoColor disables coloured status lines.
	NoColor bool
}

// Shell runs the command loop over one session.
type Shell struct {
	sess *session.Session
	in   *bufio.Scanner
	out  io.Writer
	opts Options

	ok   *color.Color
	warn *color.Color
	fail *color.Color
	head *color.Color
}

// New returns a shell that reads commands from in and writes to out.
func New(sess *session.Session, in io.Reader, out io.Writer, opts Options) *Shell {
	s := &Shell{
		sess: sess,
		in:   bufio.NewScanner(in),
		out:  out,
		opts: opts,
		ok:   color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
		fail: color.New(color.FgRed),
		head: color.New(color.FgCyan, color.Bold),
	}
	if opts.NoColor {
		for _, c := range []*color.Color{s.ok, s.warn, s.fail, s.head} {
			c.DisableColor()
		}
	}
	return s
}

// Run shows the current courses and processes commands until quit or end of
// input. It returns only read errors.
func (s *Shell) Run() error {
	s.head.Fprintln(s.out, "Transcript session", s.sess.ID())
	s.render()
	fmt.Fprintln(s.out, "Type help for a list of commands.")

	for {
		line, ok := s.readLine(prompt)
		if !ok {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		if quit := s.dispatch(line); quit {
			return nil
		}
	}
}

func (s *Shell) readLine(p string) (string, bool) {
	fmt.Fprint(s.out, p)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// dispatch runs one command line and reports whether the loop should end.
func (s *Shell) dispatch(line string) bool {
	if line == "" {
		return false
	}
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)

	switch strings.ToLower(cmd) {
	case "list", "ls":
		WriteTable(s.out, s.sess.Records())
	case "summary":
		WriteSummary(s.out, s.sess.Summary())
	case "edit":
		s.edit(args)
	case "whatif":
		s.whatIf(args)
	case "add":
		s.add(rest)
	case "delete", "rm":
		s.remove(args)
	case "restore":
		s.restore()
	case "export":
		s.export(args)
	case "help", "?":
		fmt.Fprintln(s.out, helpText)
	case "quit", "exit", "q":
		s.ok.Fprintln(s.out, "Goodbye.")
		return true
	default:
		s.fail.Fprintf(s.out, "Unknown command %q. Type help for a list of commands.\n", cmd)
	}
	return false
}

func (s *Shell) render() {
	WriteTable(s.out, s.sess.Records())
	WriteSummary(s.out, s.sess.Summary())
}

func (s *Shell) edit(args []string) {
	if len(args) != 2 {
		s.fail.Fprintln(s.out, "Usage: edit LABEL GRADE")
		return
	}
	label, grade := args[0], args[1]
	if err := session.ValidateGrade(grade); err != nil {
		s.fail.Fprintln(s.out, "Please enter a valid numeric grade.")
		return
	}
	if err := s.sess.UpdateGrade(label, grade); err != nil {
		s.reportError(label, err)
		return
	}
	s.ok.Fprintf(s.out, "Updated %s to %s.\n", label, grade)
	s.render()
}

func (s *Shell) whatIf(args []string) {
	if len(args) != 2 {
		s.fail.Fprintln(s.out, "Usage: whatif LABEL GRADE")
		return
	}
	label, grade := args[0], args[1]
	sum, err := s.sess.Preview(label, grade)
	if err != nil {
		s.reportError(label, err)
		return
	}
	fmt.Fprintf(s.out, "Current:  %s\n", FormatSummary(s.sess.Summary()))
	fmt.Fprintf(s.out, "If %s were %s: %s\n", label, grade, FormatSummary(sum))
}

func (s *Shell) add(rest string) {
	parts := strings.Split(rest, ",")
	if len(parts) != 3 {
		s.fail.Fprintln(s.out, "Please enter the course in the correct format: LABEL,GRADE,CREDITS")
		return
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	label, grade, credits := parts[0], parts[1], parts[2]
	if err := s.sess.Add(label, grade, credits); err != nil {
		s.fail.Fprintln(s.out, "Please enter a course label, a numeric grade, and non-negative credit hours.")
		return
	}
	s.ok.Fprintf(s.out, "Added %s as a temporary estimate.\n", label)
	s.render()
}

func (s *Shell) remove(args []string) {
	if len(args) != 1 {
		s.fail.Fprintln(s.out, "Usage: delete LABEL")
		return
	}
	label := args[0]
	if _, ok := s.sess.Find(label); !ok {
		s.reportError(label, session.ErrNotFound)
		return
	}

	answer, _ := s.readLine(fmt.Sprintf("Are you sure you want to delete %s? [y/N] ", label))
	switch strings.ToLower(answer) {
	case "y", "yes":
	default:
		s.warn.Fprintln(s.out, "Delete cancelled.")
		return
	}

	s.sess.Delete(label)
	s.ok.Fprintf(s.out, "Deleted %s.\n", label)
	s.render()
}

func (s *Shell) restore() {
	s.sess.Restore()
	s.ok.Fprintf(s.out, "Restored %d courses from the transcript.\n", s.sess.Len())
	s.render()
}

func (s *Shell) export(args []string) {
	cfg := s.opts.Report
	if len(args) > 0 {
		cfg.Format = types.ReportFormat(strings.ToLower(args[0]))
	}
	path, err := report.Write(report.Build(s.sess, s.opts.Source), cfg)
	if err != nil {
		s.fail.Fprintf(s.out, "Export failed: %v\n", err)
		return
	}
	s.ok.Fprintf(s.out, "Report written to %s\n", path)
}

func (s *Shell) reportError(label string, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		s.fail.Fprintf(s.out, "Course '%s' not found.\n", label)
	case errors.Is(err, session.ErrInvalidInput):
		s.fail.Fprintln(s.out, "Please enter a valid numeric grade.")
	default:
		s.fail.Fprintf(s.out, "Error: %v\n", err)
	}
}
