package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/book"
	"github.com/pocketbook-dev/pocketbook/internal/config"
	"github.com/pocketbook-dev/pocketbook/internal/ledger"
	"github.com/pocketbook-dev/pocketbook/internal/log"
	"github.com/pocketbook-dev/pocketbook/internal/model"
)

func newSessionCommand() *cobra.Command {
	var configPath string
	var scriptPath string

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Keep an allowance book for this session (nothing is saved unless exported)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}

			level, err := log.ParseLevel(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("config log.level: %w", err)
			}
			logCfg := log.DefaultConfig()
			logCfg.Level = level
			logCfg.Output = cmd.ErrOrStderr()
			logger := log.New(logCfg)

			b, err := book.New(book.Params{Owner: cfg.Owner.Name, Goal: cfg.Savings.Goal, Logger: logger})
			if err != nil {
				return fmt.Errorf("starting session: %w", err)
			}

			in := cmd.InOrStdin()
			interactive := scriptPath == ""
			if !interactive {
				f, err := os.Open(scriptPath)
				if err != nil {
					return fmt.Errorf("opening script: %w", err)
				}
				defer f.Close()
				in = f
			}

			sh := &shell{
				book:      b,
				out:       cmd.OutOrStdout(),
				logger:    logger.WithComponent(log.ComponentSession),
				exportDir: cfg.Export.Dir,
				prompt:    interactive,
			}
			return sh.run(in)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigPath(), "config file ($"+config.EnvPath+")")
	cmd.Flags().StringVar(&scriptPath, "script", "", "read session commands from a file instead of stdin")

	return cmd
}

const sessionHelp = `Commands:
  add <income|expense> <category> <amount> [memo...]
  delete <id>            remove an entry by ID (e.g. T0003)
  delete-at <n>          remove the n-th entry shown by "list"
  list                   show entries, newest first
  summary                balance, totals and savings goal
  breakdown              spending by category
  goal <amount>          set the savings goal (0 = none)
  owner <name>           set the owner's name
  export [dir]           write {owner}_allowance-ledger.csv
  reset                  delete every entry
  categories             show the standard categories
  help                   show this text
  quit                   end the session`

// shell is the line-oriented front end over a Book. After every successful
// mutation it re-renders the summary from the book's current state.
type shell struct {
	book      *book.Book
	out       io.Writer
	logger    *log.Logger
	exportDir string
	prompt    bool
}

func (s *shell) run(r io.Reader) error {
	fmt.Fprintf(s.out, "Allowance book for %s. Type \"help\" for commands.\n", s.book.OwnerName())

	sc := bufio.NewScanner(r)
	for {
		if s.prompt {
			fmt.Fprint(s.out, "> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if s.exec(line) {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}

// exec runs one command and reports whether the session should end.
// Rejected operations are printed and the session carries on.
func (s *shell) exec(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(s.out, sessionHelp)
	case "add":
		err = s.add(args)
	case "delete", "rm":
		err = s.delete(args)
	case "delete-at":
		err = s.deleteAt(args)
	case "list", "ls":
		renderList(s.out, s.book.ListTransactions())
	case "summary":
		renderSummary(s.out, s.book.OwnerName(), s.book.Summary())
	case "breakdown":
		renderBreakdown(s.out, s.book.ExpenseByCategory())
	case "goal":
		err = s.setGoal(args)
	case "owner":
		err = s.setOwner(args)
	case "export":
		err = s.export(args)
	case "reset":
		s.book.ResetLedger()
		fmt.Fprintln(s.out, "All entries deleted.")
		s.redraw()
	case "categories":
		err = printCategories(s.out)
	default:
		err = fmt.Errorf("unknown command %q (try \"help\")", cmd)
	}

	if err != nil {
		s.logger.Info("command rejected", log.FieldCommand, cmd, log.FieldError, err)
		fmt.Fprintf(s.out, "error: %s\n", describe(err))
	}
	return false
}

func (s *shell) add(args []string) error {
	if len(args) < 3 {
		return errors.New("usage: add <income|expense> <category> <amount> [memo...]")
	}
	kind, err := model.ParseKind(args[0])
	if err != nil {
		return err
	}
	category := args[1]
	amount, err := parseAmount(args[2])
	if err != nil {
		return err
	}
	memo := strings.Join(args[3:], " ")

	txn, err := s.book.AddTransaction(kind, category, amount, memo)
	if err != nil {
		return err
	}
	if !model.IsKnownCategory(kind, category) {
		fmt.Fprintf(s.out, "note: %q is not a standard %s category\n", category, kind)
	}
	fmt.Fprintf(s.out, "Recorded %s of %s (%s).\n", strings.ToLower(string(kind)), formatAmount(txn.Magnitude()), txn.ID)
	s.redraw()
	return nil
}

func (s *shell) delete(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: delete <id>")
	}
	txn, err := s.book.RemoveTransaction(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Deleted %s.\n", txn.ID)
	s.redraw()
	return nil
}

func (s *shell) deleteAt(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: delete-at <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", ledger.ErrInvalidIndex, args[0])
	}
	// list numbers entries from 1.
	if err := s.book.RemoveAt(n - 1); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Deleted entry #%d.\n", n)
	s.redraw()
	return nil
}

func (s *shell) setGoal(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: goal <amount>")
	}
	goal, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	if err := s.book.SetSavingsGoal(goal); err != nil {
		return err
	}
	s.redraw()
	return nil
}

func (s *shell) setOwner(args []string) error {
	if err := s.book.SetOwnerName(strings.Join(args, " ")); err != nil {
		return err
	}
	s.redraw()
	return nil
}

func (s *shell) export(args []string) error {
	dir := s.exportDir
	if len(args) > 0 {
		dir = strings.Join(args, " ")
	}
	if len(s.book.ListTransactions()) == 0 {
		return errors.New("nothing to export yet; add an entry first")
	}
	path, err := s.book.ExportFile(dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Exported to %s\n", path)
	return nil
}

func (s *shell) redraw() {
	renderSummary(s.out, s.book.OwnerName(), s.book.Summary())
}

// amountPattern matches plain digits or digits grouped in threes by commas,
// with an optional minus sign so negatives reach the book and get its error.
var amountPattern = regexp.MustCompile(`^-?(\d+|\d{1,3}(,\d{3})+)$`)

// parseAmount accepts whole numbers such as 1500 or 1,500.
func parseAmount(s string) (int64, error) {
	if !amountPattern.MatchString(s) {
		return 0, fmt.Errorf("amount %q is not a whole number", s)
	}
	v, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q is out of range", s)
	}
	return v, nil
}

// describe turns rejected operations into something the user can act on.
func describe(err error) string {
	switch {
	case errors.Is(err, ledger.ErrInvalidIndex):
		return "pick a valid entry to delete (see \"list\")"
	case errors.Is(err, ledger.ErrNotFound):
		return "no entry with that ID (see \"list\")"
	case errors.Is(err, ledger.ErrInvalidAmount):
		return "the amount must be between 0 and " + formatAmount(ledger.MaxAmount)
	case errors.Is(err, book.ErrInvalidGoal):
		return "the savings goal must be between 0 and " + formatAmount(ledger.MaxAmount)
	case errors.Is(err, book.ErrEmptyOwner):
		return "the name must not be empty"
	}
	return err.Error()
}
