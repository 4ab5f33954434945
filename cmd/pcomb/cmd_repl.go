package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/pcomb/comb"
	"github.com/npillmayer/pcomb/registry"
)

func newReplCmd(a *app) *cobra.Command {
	var initFile string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse lines interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("init") {
				initFile = a.cfg.Init
			}
			intp, err := NewIntp(a.table, a.cfg.Parser, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			intp.tree = a.cfg.Tree
			repl, err := readline.New(a.cfg.Prompt)
			if err != nil {
				return fmt.Errorf("cannot start REPL: %w", err)
			}
			defer repl.Close()
			intp.repl = repl
			pterm.Info.Println("Welcome to the pcomb REPL")
			tracer().Infof("Quit with <ctrl>D or :quit") // inform user how to stop the CLI
			intp.loadInitFile(initFile)
			intp.REPL()
			return nil
		},
	}
	cmd.Flags().StringVar(&initFile, "init", "", "file with lines to parse before going interactive")
	return cmd
}

// Intp is our interpreter object. It parses lines with the current parser,
// lines starting with ':' are commands.
type Intp struct {
	table   *registry.Table
	current string      // name of the current parser
	parser  comb.Parser // the current parser
	tree    bool        // render sequences as trees
	repl    *readline.Instance
	out     io.Writer
}

// NewIntp creates an interpreter, starting with the parser named current.
func NewIntp(table *registry.Table, current string, out io.Writer) (*Intp, error) {
	intp := &Intp{table: table, out: out}
	if err := intp.use(current); err != nil {
		return nil, err
	}
	return intp, nil
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

// Eval evaluates a line of input. It returns true if the user requested to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.Execute(strings.Fields(line[1:]))
	}
	tracer().Debugf("parsing %q with %s", line, intp.current)
	r, pos := comb.ParseString(intp.parser, line)
	printResult(intp.out, intp.current, r, intp.tree)
	if r.IsFailure() {
		return false, errNoMatch
	}
	if rest := string([]rune(line)[pos:]); rest != "" {
		fmt.Fprintf(intp.out, "unconsumed: %q\n", rest)
	}
	return false, nil
}

// Execute executes a command, given as its name and arguments.
func (intp *Intp) Execute(args []string) (bool, error) {
	if len(args) == 0 {
		return false, intp.reportError(fmt.Errorf("missing command"))
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "q", "quit":
		return true, nil
	case "use":
		if len(args) != 1 {
			return false, intp.reportError(fmt.Errorf("usage: :use <parser>"))
		}
		if err := intp.use(args[0]); err != nil {
			return false, intp.reportError(err)
		}
		pterm.Info.Println("using parser " + intp.current)
	case "list":
		intp.table.Each(func(name string, e *registry.Entry) {
			fmt.Fprintf(intp.out, "%-12s %s\n", name, e.Doc)
		})
	case "trace":
		if len(args) != 1 {
			return false, intp.reportError(fmt.Errorf("usage: :trace Debug|Info|Error"))
		}
		level := tracing.TraceLevelFromString(args[0])
		for _, key := range traceKeys {
			tracing.Select(key).SetTraceLevel(level)
		}
	case "tree":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return false, intp.reportError(fmt.Errorf("usage: :tree on|off"))
		}
		intp.tree = args[0] == "on"
	default:
		return false, intp.reportError(fmt.Errorf("unknown command ':%s'", cmd))
	}
	return false, nil
}

func (intp *Intp) use(name string) error {
	p, err := intp.table.Lookup(name)
	if err != nil {
		return err
	}
	intp.current, intp.parser = name, p
	return nil
}

func (intp *Intp) reportError(err error) error {
	pterm.Error.Println(err.Error())
	return err
}
