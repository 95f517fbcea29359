package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/ntasim/ntasim/engine"
	"github.com/ntasim/ntasim/eval"
	"github.com/ntasim/ntasim/instantiate"
	"github.com/ntasim/ntasim/sim"
)

// REPL implements the CLI commands of spec.md §6.3 over a sim.Simulator
// built by the most recent `load`.
type REPL struct {
	out io.Writer
	err io.Writer
	log *slog.Logger
	ev  *eval.Evaluator
	sim *sim.Simulator
}

// NewREPL returns a REPL with no scenario loaded yet.
func NewREPL(out, errOut io.Writer, logger *slog.Logger) *REPL {
	if logger == nil {
		logger = slog.Default()
	}
	return &REPL{out: out, err: errOut, log: logger, ev: eval.New()}
}

// Run reads commands from in until `x`/`q` or EOF, returning the process
// exit code (spec.md §6.3: 0 on normal exit).
func (r *REPL) Run(in io.Reader) int {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, "ntasim> ")
		if !scanner.Scan() {
			return 0
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		args, err := shellquote.Split(line)
		if err != nil {
			fmt.Fprintf(r.err, "error: bad quoting: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "x" || args[0] == "q" {
			return 0
		}
		r.dispatch(args)
	}
}

func (r *REPL) dispatch(args []string) {
	cmd := args[0]
	switch {
	case cmd == "load":
		if len(args) != 2 {
			r.errorf("load: expected exactly one path argument")
			return
		}
		r.load(args[1])
	case cmd == "state":
		verbose := len(args) > 1 && args[1] == "-v"
		r.requireLoaded(func() { r.printState(verbose) })
	case cmd == "seq":
		r.requireLoaded(r.printSeq)
	case cmd == "g":
		r.requireLoaded(func() { r.goTo(intArg(args, 1, 0)) })
	case cmd == "f":
		r.requireLoaded(func() { r.forward(intArg(args, 1, 1)) })
	case cmd == "b":
		r.requireLoaded(func() { r.back(intArg(args, 1, 1)) })
	case cmd == "r":
		r.requireLoaded(func() { r.random(intArg(args, 1, 1)) })
	case strings.HasPrefix(cmd, "t"):
		idx, convErr := strconv.Atoi(strings.TrimPrefix(cmd, "t"))
		if convErr != nil {
			r.errorf("unknown command %q", cmd)
			return
		}
		r.requireLoaded(func() { r.fire(idx) })
	default:
		r.errorf("unknown command %q", cmd)
	}
}

func intArg(args []string, idx, def int) int {
	if idx >= len(args) {
		return def
	}
	n, err := strconv.Atoi(args[idx])
	if err != nil {
		return def
	}
	return n
}

func (r *REPL) errorf(format string, a ...any) {
	fmt.Fprintf(r.err, "error: "+format+"\n", a...)
}

func (r *REPL) requireLoaded(fn func()) {
	if r.sim == nil {
		r.errorf("no scenario loaded; try `load <path>`")
		return
	}
	fn()
}

func (r *REPL) load(path string) {
	f, err := os.Open(path)
	if err != nil {
		r.errorf("load: %v", err)
		return
	}
	defer f.Close()

	spec, err := sim.LoadScenario(f)
	if err != nil {
		r.errorf("load: %v", err)
		return
	}
	sys, err := spec.ToSystem()
	if err != nil {
		r.errorf("load: %v", err)
		return
	}
	prog, d, instances, err := instantiate.Materialize(sys, r.ev)
	if err != nil {
		r.errorf("load: %v", err)
		return
	}
	root := engine.NewState(sys, prog, d, instances)
	eng := engine.New(r.ev, spec.Seed, r.log)
	r.sim = sim.New(eng, root, r.log)
	fmt.Fprintf(r.out, "loaded %q (seed %d)\n", spec.Name, spec.Seed)
	r.printState(false)
}

func (r *REPL) printState(verbose bool) {
	fmt.Fprint(r.out, stateSummary(r.sim.Current()))
	if verbose {
		fmt.Fprint(r.out, rawDump(r.sim.Current()))
	}
	outcomes, err := r.sim.Transitions()
	if err != nil {
		r.errorf("state: %v", err)
		return
	}
	fmt.Fprint(r.out, enabledSummary(outcomes))
}

func (r *REPL) printSeq() {
	trace := r.sim.Trace()
	if len(trace) == 0 {
		fmt.Fprintln(r.out, "(empty trace)")
		return
	}
	for i, tr := range trace {
		fmt.Fprintf(r.out, "--- step %d ---\n%s\n", i+1, tr.Ops.String())
	}
}

func (r *REPL) goTo(idx int) {
	if _, err := r.sim.Goto(idx); err != nil {
		r.errorf("g: %v", err)
		return
	}
	r.printState(false)
}

func (r *REPL) forward(n int) {
	if _, err := r.sim.Forward(n); err != nil {
		r.errorf("f: %v", err)
		return
	}
	r.printState(false)
}

func (r *REPL) back(n int) {
	if _, err := r.sim.Back(n); err != nil {
		r.errorf("b: %v", err)
		return
	}
	r.printState(false)
}

func (r *REPL) random(n int) {
	before := r.sim.Current()
	states, _, err := r.sim.Random(n)
	if err != nil {
		r.errorf("r: %v", err)
		return
	}
	for _, after := range states {
		diff, derr := stepDiff(before, after)
		if derr == nil {
			fmt.Fprint(r.out, diff)
		}
		before = after
	}
	r.printState(false)
}

func (r *REPL) fire(idx int) {
	before := r.sim.Current()
	after, _, err := r.sim.Fire(idx)
	if err != nil {
		r.errorf("t%d: %v", idx, err)
		return
	}
	diff, derr := stepDiff(before, after)
	if derr == nil {
		fmt.Fprint(r.out, diff)
	}
	r.printState(false)
}
