package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/graph-presence-cli/internal/adapters/render/console"
	"github.com/bnema/graph-presence-cli/internal/application"
	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/bnema/graph-presence-cli/internal/logging"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

const historyFileName = "console_history"

var errExit = errors.New("exit")

func newConsoleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Interactive console over the presence operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConsole(cmd.Context(), cmd, app)
		},
	}
}

func runConsole(ctx context.Context, cmd *cobra.Command, app *app) error {
	historyFile := ""
	if err := os.MkdirAll(app.cfg.SessionDir, 0o700); err == nil {
		historyFile = filepath.Join(app.cfg.SessionDir, historyFileName)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 "gp> ",
		HistoryFile:            historyFile,
		DisableAutoSaveHistory: true,
		AutoComplete:           consoleCompleter(),
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		HistorySearchFold:      true,
		Stdout:                 cmd.OutOrStdout(),
		Stderr:                 cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	sh := &shell{
		controller: app.controller,
		out:        rl.Stdout(),
		readSecret: func() (string, error) {
			secret, err := rl.ReadPassword("app secret: ")
			return string(secret), err
		},
	}
	_ = sh.exec(ctx, "show")
	_, _ = fmt.Fprintln(sh.out, "Type 'help' for commands. Use TAB for completion.")

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if !holdsSecret(input) {
			_ = rl.SaveHistory(input)
		}

		if err := sh.exec(ctx, input); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			_, _ = fmt.Fprintf(sh.out, "Error: %v\n", err)
		}
	}
}

// shell executes one console line against the controller.
type shell struct {
	controller *application.Controller
	out        io.Writer
	readSecret func() (string, error)
}

func (s *shell) exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	c := s.controller
	args := fields[1:]

	switch fields[0] {
	case "help", "?":
		_, err := fmt.Fprint(s.out, consoleHelp)
		return err
	case "exit", "quit":
		return errExit
	case "show":
		return s.show(false)
	case "show-token":
		return s.show(true)
	case "set":
		return s.set(ctx, args)
	case "session":
		index, err := indexArg(args)
		if err != nil {
			return err
		}
		if err := c.SelectSessionPresence(index); err != nil {
			return err
		}
		return s.show(false)
	case "preferred":
		index, err := indexArg(args)
		if err != nil {
			return err
		}
		if err := c.SelectPreferredPresence(index); err != nil {
			return err
		}
		return s.show(false)
	case "expiration":
		if len(args) != 1 {
			return errors.New("usage: expiration <ISO-8601 duration, e.g. PT1H>")
		}
		c.SetExpirationDuration(args[0])
		return s.show(false)
	case "options":
		state := c.Snapshot()
		_, _ = fmt.Fprint(s.out, console.RenderPresenceOptions("Session presence", domain.SessionPresenceOptions, state.SessionOption))
		_, err := fmt.Fprint(s.out, console.RenderPresenceOptions("Preferred presence", domain.PreferredPresenceOptions, state.PreferredOption))
		return err
	case "logs":
		detail := len(args) > 0 && args[0] == "detail"
		_, err := fmt.Fprint(s.out, console.RenderLogs(c.Logs(), console.LogOptions{Detail: detail}))
		return err
	case "clear-logs":
		c.ClearLogs()
		return nil
	case "clear-data":
		return s.then(c.ClearStoredData(ctx))
	case "token":
		return s.then(c.GetToken(ctx))
	case "whoami":
		return s.then(c.WhoAmI(ctx))
	case "presence":
		return s.then(c.GetPresence(ctx))
	case "set-presence":
		return s.then(c.SetSessionPresence(ctx))
	case "clear-presence":
		return s.then(c.ClearSessionPresence(ctx))
	case "set-preferred":
		return s.then(c.SetPreferredPresence(ctx))
	case "clear-preferred":
		return s.then(c.ClearPreferredPresence(ctx))
	default:
		return fmt.Errorf("unknown command %q, type 'help'", fields[0])
	}
}

func (s *shell) set(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: set tenant|app|secret|user [value]")
	}
	value := strings.Join(args[1:], " ")
	c := s.controller

	switch args[0] {
	case "tenant":
		return c.SetTenantID(ctx, value)
	case "app":
		return c.SetAppID(ctx, value)
	case "user":
		return c.SetUserObjectID(ctx, value)
	case "secret":
		if len(args) == 1 && s.readSecret != nil {
			secret, err := s.readSecret()
			if err != nil {
				return err
			}
			value = secret
		}
		return c.SetAppSecret(ctx, value)
	default:
		return fmt.Errorf("unknown field %q: expected tenant, app, secret or user", args[0])
	}
}

// then prints the state after an action. A failed action has already been
// reported through the notifier, so it is only logged here.
func (s *shell) then(err error) error {
	if err != nil {
		logging.Debug("console", "action failed: %v", err)
		return nil
	}
	return s.show(false)
}

func (s *shell) show(showToken bool) error {
	output, err := console.Render(s.controller.Snapshot(), console.RenderOptions{ShowToken: showToken})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out, output)
	return err
}

func indexArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("expected one option index, see 'options'")
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("option index %q is not a number", args[0])
	}
	return index, nil
}

func holdsSecret(line string) bool {
	fields := strings.Fields(line)
	return len(fields) >= 3 && fields[0] == "set" && fields[1] == "secret"
}

func consoleCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("show"),
		readline.PcItem("show-token"),
		readline.PcItem("set",
			readline.PcItem("tenant"),
			readline.PcItem("app"),
			readline.PcItem("secret"),
			readline.PcItem("user"),
		),
		readline.PcItem("session"),
		readline.PcItem("preferred"),
		readline.PcItem("expiration"),
		readline.PcItem("options"),
		readline.PcItem("token"),
		readline.PcItem("whoami"),
		readline.PcItem("presence"),
		readline.PcItem("set-presence"),
		readline.PcItem("clear-presence"),
		readline.PcItem("set-preferred"),
		readline.PcItem("clear-preferred"),
		readline.PcItem("logs", readline.PcItem("detail")),
		readline.PcItem("clear-logs"),
		readline.PcItem("clear-data"),
		readline.PcItem("exit"),
	)
}

const consoleHelp = `Fields:
  set tenant|app|user <value>   store a field (empty value removes it)
  set secret [value]            store the app secret for this session (prompts when no value)
  session <n>                   pick a session presence option
  expiration <duration>         ISO-8601 duration for set-presence (default PT5M)
  preferred <n>                 pick a preferred presence option
  options                       list presence options
Actions:
  token                         acquire a token, then load user and presence when a user is set
  whoami                        look up the user
  presence                      fetch presence
  set-presence | clear-presence
  set-preferred | clear-preferred
  clear-data                    remove every stored field
Display:
  show | show-token | logs [detail] | clear-logs
  exit
`
