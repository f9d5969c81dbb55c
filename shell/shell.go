// Package shell is the interactive front end: it owns a current
// position, runs the solvers on it, and prints solution paths. All of
// the actual puzzle logic lives in the library packages; the shell is
// glue.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/huarongdao/board"
	"github.com/domino14/huarongdao/config"
	"github.com/domino14/huarongdao/movegen"
	"github.com/domino14/huarongdao/openings"
	"github.com/domino14/huarongdao/search"
	"github.com/domino14/huarongdao/search/astar"
	"github.com/domino14/huarongdao/search/dfs"
	"github.com/domino14/huarongdao/store"
)

// errExit signals a clean quit out of the readline loop.
var errExit = errors.New("exit")

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	curBoard    board.Board
	haveBoard   bool
	lastResult  *search.Result
	lastEngine  string
	dfsSolver   *dfs.Solver
	astarSolver *astar.Solver
	archive     *store.Store
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "show - print the current position\n")
	io.WriteString(w, "load <path> - load a position from a 5-line grid file\n")
	io.WriteString(w, "opening <name> - load a built-in starting position\n")
	io.WriteString(w, "openings - list built-in starting positions\n")
	io.WriteString(w, "scramble [steps] [seed] - random-walk the current position; steps defaults to 20\n")
	io.WriteString(w, "dfs - solve depth-first (first solution found)\n")
	io.WriteString(w, "astar - solve with A* (shortest solution)\n")
	io.WriteString(w, "compare - run both engines and compare node counts\n")
	io.WriteString(w, "path [n] - print the last solution path, or its first n positions\n")
	io.WriteString(w, "set node-budget <n> - cap expansions per solve; 0 is unlimited\n")
	io.WriteString(w, "set engine <dfs|astar> - pick the default engine\n")
	io.WriteString(w, "exit\n")
}

func newController(cfg *config.Config) *ShellController {
	sc := &ShellController{
		cfg:         cfg,
		dfsSolver:   dfs.NewSolver(),
		astarSolver: astar.NewSolver(),
	}
	sc.dfsSolver.SetNodeBudget(cfg.NodeBudget)
	sc.astarSolver.SetNodeBudget(cfg.NodeBudget)
	if cfg.DBPath != "" {
		archive, err := store.Open(cfg.DBPath)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.DBPath).
				Msg("could not open solve archive; continuing without it")
		} else {
			sc.archive = archive
		}
	}
	return sc
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mhrd>\033[0m ",
		HistoryFile:     cfg.HistoryFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := newController(cfg)
	sc.l = l
	return sc
}

// Loop reads and executes commands until exit or EOF.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	if sc.archive != nil {
		defer sc.archive.Close()
	}
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if err := sc.Execute(strings.TrimSpace(line), sc.l.Stderr()); err != nil {
			if errors.Is(err, errExit) {
				break
			}
			showMessage("error: "+err.Error(), sc.l.Stderr())
		}
	}
	log.Info().Msg("leaving shell")
}

// Execute runs a single command line, writing output to w.
func (sc *ShellController) Execute(line string, w io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "exit", "bye", "quit":
		return errExit
	case "help":
		usage(w)
		return nil
	case "show":
		return sc.show(w)
	case "load":
		return sc.load(args, w)
	case "opening":
		return sc.opening(args, w)
	case "openings":
		return sc.listOpenings(w)
	case "scramble":
		return sc.scramble(args, w)
	case "dfs", "astar":
		return sc.solve(cmd, w)
	case "solve":
		return sc.solve(sc.cfg.DefaultEngine, w)
	case "compare":
		return sc.compare(w)
	case "path":
		return sc.path(args, w)
	case "set":
		return sc.set(args, w)
	}
	return fmt.Errorf("unknown command %q; try help", cmd)
}

func (sc *ShellController) show(w io.Writer) error {
	if !sc.haveBoard {
		return errors.New("no position loaded; try opening classic")
	}
	showMessage(sc.curBoard.String(), w)
	return nil
}

func (sc *ShellController) load(args []string, w io.Writer) error {
	if len(args) != 1 {
		return errors.New("load takes one file path")
	}
	text, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	b, err := board.Parse(string(text))
	if err != nil {
		return err
	}
	sc.setBoard(b)
	return sc.show(w)
}

func (sc *ShellController) opening(args []string, w io.Writer) error {
	if len(args) != 1 {
		return errors.New("opening takes one name; see openings")
	}
	o, err := openings.Get(args[0])
	if err != nil {
		return err
	}
	b, err := o.Board()
	if err != nil {
		return err
	}
	sc.setBoard(b)
	return sc.show(w)
}

func (sc *ShellController) listOpenings(w io.Writer) error {
	names, err := openings.Names()
	if err != nil {
		return err
	}
	for _, name := range names {
		o, err := openings.Get(name)
		if err != nil {
			return err
		}
		desc := name
		if o.Aka != "" {
			desc += " (" + o.Aka + ")"
		}
		showMessage(desc, w)
	}
	return nil
}

func (sc *ShellController) scramble(args []string, w io.Writer) error {
	if !sc.haveBoard {
		return errors.New("no position loaded; try opening classic")
	}
	steps := 20
	var seed uint64
	var err error
	if len(args) > 0 {
		if steps, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("bad step count %q", args[0])
		}
	}
	if len(args) > 1 {
		if seed, err = strconv.ParseUint(args[1], 10, 64); err != nil {
			return fmt.Errorf("bad seed %q", args[1])
		}
	}
	b, err := movegen.Scramble(sc.curBoard, steps, seed)
	if err != nil {
		return err
	}
	sc.setBoard(b)
	return sc.show(w)
}

func (sc *ShellController) runEngine(ctx context.Context, engine string,
	b board.Board) (*search.Result, error) {
	switch engine {
	case "dfs":
		return sc.dfsSolver.Solve(ctx, b)
	case "astar":
		return sc.astarSolver.Solve(ctx, b)
	}
	return nil, fmt.Errorf("unknown engine %q", engine)
}

func (sc *ShellController) solve(engine string, w io.Writer) error {
	if !sc.haveBoard {
		return errors.New("no position loaded; try opening classic")
	}
	start := time.Now()
	res, err := sc.runEngine(context.Background(), engine, sc.curBoard)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	sc.lastResult = res
	sc.lastEngine = engine
	showMessage(fmt.Sprintf("%s: %d moves, %d nodes expanded in %v; path to see it",
		engine, res.Moves(), res.Expanded, elapsed.Round(time.Millisecond)), w)
	sc.recordSolve(engine, res, elapsed, w)
	return nil
}

func (sc *ShellController) recordSolve(engine string, res *search.Result,
	elapsed time.Duration, w io.Writer) {
	if sc.archive == nil {
		return
	}
	key := sc.curBoard.CanonicalKey()
	if prev, err := sc.archive.Best(key); err == nil && prev.Moves < res.Moves() {
		showMessage(fmt.Sprintf("archive has a shorter solve: %d moves (%s)",
			prev.Moves, prev.Engine), w)
	}
	sc.archive.Record(store.Solve{
		Position: key,
		Engine:   engine,
		Moves:    res.Moves(),
		Expanded: res.Expanded,
		Elapsed:  elapsed,
	})
}

// compare runs both engines on the current position, concurrently but
// each as its own independent single-threaded search, and reports both.
func (sc *ShellController) compare(w io.Writer) error {
	if !sc.haveBoard {
		return errors.New("no position loaded; try opening classic")
	}
	b := sc.curBoard
	var dfsRes, astarRes *search.Result
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		dfsRes, err = sc.dfsSolver.Solve(ctx, b)
		return err
	})
	g.Go(func() error {
		var err error
		astarRes, err = sc.astarSolver.Solve(ctx, b)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	showMessage(fmt.Sprintf("dfs:   %d moves, %d nodes expanded",
		dfsRes.Moves(), dfsRes.Expanded), w)
	showMessage(fmt.Sprintf("astar: %d moves, %d nodes expanded",
		astarRes.Moves(), astarRes.Expanded), w)
	sc.lastResult = astarRes
	sc.lastEngine = "astar"
	return nil
}

func (sc *ShellController) path(args []string, w io.Writer) error {
	if sc.lastResult == nil {
		return errors.New("nothing solved yet")
	}
	boards := sc.lastResult.Path
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("bad position count %q", args[0])
		}
		if n < len(boards) {
			boards = boards[:n]
		}
	}
	steps := lo.Map(boards, func(b board.Board, i int) string {
		return fmt.Sprintf("-- %d --\n%s", i, b.String())
	})
	showMessage(strings.Join(steps, "\n"), w)
	showMessage(fmt.Sprintf("(%s, %d moves total)", sc.lastEngine,
		sc.lastResult.Moves()), w)
	return nil
}

func (sc *ShellController) set(args []string, w io.Writer) error {
	if len(args) != 2 {
		return errors.New("set takes a key and a value")
	}
	switch args[0] {
	case "node-budget":
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return fmt.Errorf("bad node budget %q", args[1])
		}
		sc.cfg.NodeBudget = n
		sc.dfsSolver.SetNodeBudget(n)
		sc.astarSolver.SetNodeBudget(n)
	case "engine":
		if args[1] != "dfs" && args[1] != "astar" {
			return fmt.Errorf("engine must be dfs or astar, not %q", args[1])
		}
		sc.cfg.DefaultEngine = args[1]
	default:
		return fmt.Errorf("unknown setting %q", args[0])
	}
	showMessage(args[0]+" set to "+args[1], w)
	return nil
}

func (sc *ShellController) setBoard(b board.Board) {
	sc.curBoard = b
	sc.haveBoard = true
	sc.lastResult = nil
	sc.lastEngine = ""
}
