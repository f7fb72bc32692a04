package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/segtree"
	"github.com/npillmayer/segtree/html"
	"github.com/npillmayer/uax/uax11"
)

// Session is an interactive command loop operating on a single tree.
type Session struct {
	scanner *bufio.Scanner
	out     io.Writer
	op      Op
	tree    *segtree.Tree[int64]
	palette palette
	width   int
	context *uax11.Context // for measuring display widths
	prompt  bool
}

// NewSession creates a session reading commands from s and writing to out.
// Trees will be built with aggregate operator op.
func NewSession(s *bufio.Scanner, out io.Writer, op Op) *Session {
	return &Session{
		scanner: s,
		out:     out,
		op:      op,
		palette: makeDefaultPalette(),
		width:   TerminalWidth(),
		context: uax11.ContextFromEnvironment(),
		prompt:  true,
	}
}

// SetColor switches colored output on or off.
func (s *Session) SetColor(enabled bool) {
	s.palette.setEnabled(enabled)
}

// SetPrompt switches the input prompt and help banner on or off.
func (s *Session) SetPrompt(enabled bool) {
	s.prompt = enabled
}

// Tree returns the current tree, or nil if none has been built yet.
func (s *Session) Tree() *segtree.Tree[int64] {
	return s.tree
}

// Start runs the command loop until EXIT or end of input.
func (s *Session) Start() error {
	if s.prompt {
		s.printHelp()
		s.printPrompt()
	}
	for s.scanner.Scan() {
		if !s.processInput(s.scanner.Text()) {
			return nil
		}
		if s.prompt {
			s.printPrompt()
		}
	}
	return s.scanner.Err()
}

func (s *Session) printHelp() {
	fmt.Fprint(s.out, `
Segment Tree CLI

Available Commands:
  BUILD <int> ...   Build a tree from a sequence of integers
  OP sum|min|max    Select the aggregate operator and rebuild the tree
  GET <i>           Print element i
  SET <i> <value>   Replace element i
  QUERY <f> <l>     Print the aggregate of elements f…l (inclusive)
  PREFIX            Print all prefix aggregates
  NODES             Print the nodes of the tree
  DOT               Print the tree in Graphviz DOT format
  HTML              Print the tree as an HTML table
  CHECK             Validate the tree's invariants
  HELP              Print this message
  EXIT              Terminate this session

`)
}

func (s *Session) printPrompt() {
	s.palette.prompt.Fprintf(s.out, "%s> ", s.op)
}

func (s *Session) printError(err error) {
	s.palette.err.Fprintf(s.out, "Error: %s\n", err.Error())
}

func (s *Session) display() display {
	return display{w: s.out, op: s.op, p: s.palette, width: s.width, context: s.context}
}

// processInput executes a single command line. It returns false if the session
// should end.
func (s *Session) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	args := fields[1:]
	tracer().Debugf("command %s %v", command, args)
	switch command {
	default:
		fmt.Fprintf(s.out, "Unknown command \"%s\"\n", command)
	case "build":
		s.processBuildCommand(args)
	case "op":
		s.processOpCommand(args)
	case "get":
		s.processGetCommand(args)
	case "set":
		s.processSetCommand(args)
	case "query":
		s.processQueryCommand(args)
	case "prefix":
		s.withTree(func(t *segtree.Tree[int64]) error { return s.display().prefixes(t) })
	case "nodes":
		s.withTree(func(t *segtree.Tree[int64]) error {
			s.display().nodes(t)
			s.display().elements(t)
			return nil
		})
	case "dot":
		s.withTree(func(t *segtree.Tree[int64]) error { return segtree.ToDot(t, s.out) })
	case "html":
		s.withTree(func(t *segtree.Tree[int64]) error {
			if err := html.Table(t, s.out); err != nil {
				return err
			}
			_, err := io.WriteString(s.out, "\n")
			return err
		})
	case "check":
		s.withTree(func(t *segtree.Tree[int64]) error {
			if err := segtree.Check(t); err != nil {
				return err
			}
			fmt.Fprintln(s.out, "OK")
			return nil
		})
	case "help":
		s.printHelp()
	case "exit", "quit":
		return false
	}
	return true
}

func (s *Session) withTree(f func(*segtree.Tree[int64]) error) {
	if s.tree == nil {
		fmt.Fprintln(s.out, "No tree; use BUILD first.")
		return
	}
	if err := f(s.tree); err != nil {
		s.printError(err)
	}
}

func (s *Session) processBuildCommand(args []string) {
	elements, err := parseInts(args)
	if err != nil {
		fmt.Fprintln(s.out, "Usage: BUILD <int> ...")
		s.printError(err)
		return
	}
	s.rebuild(elements)
}

func (s *Session) rebuild(elements []int64) {
	tree, err := s.op.Build(elements)
	if err != nil {
		s.printError(err)
		return
	}
	s.tree = tree
	s.display().nodes(tree)
}

func (s *Session) processOpCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: OP sum|min|max")
		return
	}
	op, err := ParseOp(args[0])
	if err != nil {
		s.printError(err)
		return
	}
	s.op = op
	if s.tree != nil {
		s.rebuild(s.tree.Elements())
	}
}

func (s *Session) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: GET <i>")
		return
	}
	s.withTree(func(t *segtree.Tree[int64]) error {
		i, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		v, err := t.Get(i)
		if err != nil {
			return err
		}
		s.palette.value.Fprintln(s.out, formatValue(s.op, v, false))
		return nil
	})
}

func (s *Session) processSetCommand(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "Usage: SET <i> <value>")
		return
	}
	s.withTree(func(t *segtree.Tree[int64]) error {
		i, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		v, err := parseInts(args[1:])
		if err != nil {
			return err
		}
		if err = t.Set(i, v[0]); err != nil {
			return err
		}
		s.display().nodes(t)
		return nil
	})
}

func (s *Session) processQueryCommand(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "Usage: QUERY <first> <last>")
		return
	}
	s.withTree(func(t *segtree.Tree[int64]) error {
		first, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		last, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		agg, err := t.Query(first, last)
		if err != nil {
			return err
		}
		s.palette.value.Fprintln(s.out, formatValue(s.op, agg, false))
		return nil
	})
}
