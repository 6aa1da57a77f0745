package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/incseq/cmd/incseq/opts"
	"github.com/walteh/incseq/pkg/config"
	"github.com/walteh/incseq/pkg/host"
	"github.com/walteh/incseq/pkg/report"
	"github.com/walteh/incseq/pkg/session"
	"gitlab.com/tozd/go/errors"
)

var runActions = []string{
	"trigger",
	"yank line",
	"move cursor",
	"select range",
	"clear selection",
	"show",
	"write",
	"reset",
	"quit",
}

// NewRunCmd creates a new run command
func NewRunCmd(load func(ctx context.Context) (*opts.RootOpts, error)) *cobra.Command {
	var (
		registerText string
		linewise     bool
		cursor       int
	)

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Open a file and run an interactive increment session",
		Long: `Run loads a file as the working document and drives the engine
interactively. Seed the register with --register or yank a line from the
file, then trigger the session: the first trigger prompts for mode, step
and scope; later triggers reuse them until the register changes or the
session is reset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "run").Logger().WithContext(ctx)

			ro, err := load(ctx)
			if err != nil {
				return err
			}

			buf, err := host.LoadLineBuffer(args[0])
			if err != nil {
				return errors.Errorf("opening document: %w", err)
			}
			buf.SetCursor(cursor - 1)

			reg := &cliRegister{}
			if registerText != "" {
				typ := host.Charwise
				if linewise || strings.Contains(registerText, "\n") {
					typ = host.Linewise
				}
				reg.Yank(registerText, typ)
			}

			var profile *config.Profile
			if p, ok := ro.Config.ProfileFor(args[0]); ok {
				profile = &p
			}

			ui := &terminalUI{}
			printer := report.NewPrinter(os.Stdout, *zerolog.Ctx(ctx))

			sess, err := session.New(session.Options{
				Register: reg,
				Document: buf,
				Prompter: ui,
				Notifier: ui,
				Config:   ro.Config,
				Profile:  profile,
				Report:   printer.Print,
			})
			if err != nil {
				return errors.Errorf("creating session: %w", err)
			}

			return runLoop(ctx, sess, buf, reg, ui)
		},
	}

	cmd.Flags().StringVarP(&registerText, "register", "r", "", "seed the shared register with this text")
	cmd.Flags().BoolVar(&linewise, "linewise", false, "treat the seeded register as linewise")
	cmd.Flags().IntVar(&cursor, "cursor", 1, "initial cursor line (1-based)")

	return cmd
}

// runLoop drives one interactive session until the user quits.
func runLoop(ctx context.Context, sess *session.Session, buf *host.LineBuffer, reg *cliRegister, ui *terminalUI) error {
	for {
		action, err := pterm.DefaultInteractiveSelect.
			WithOptions(runActions).
			WithDefaultText("Action").
			Show()
		if err != nil {
			return nil
		}

		switch action {
		case "trigger":
			ev := session.TriggerEvent{Line: buf.CursorLine()}
			if start, end, ok := buf.Selection(); ok {
				ev.RangeStart, ev.RangeEnd, ev.HasRange = start, end, true
			}
			if err := sess.Trigger(ctx, ev); err != nil {
				return errors.Errorf("trigger: %w", err)
			}

		case "yank line":
			n, err := promptLine(ui, buf)
			if err != nil {
				continue
			}
			text, err := buf.Line(n)
			if err != nil {
				ui.Notify(host.LevelError, err.Error())
				continue
			}
			reg.Yank(text, host.Charwise)
			// The host's change-detection signal for the watched register.
			sess.MarkExternalChange()
			ui.Notify(host.LevelInfo, fmt.Sprintf("yanked line %d", n+1))

		case "move cursor":
			n, err := promptLine(ui, buf)
			if err != nil {
				continue
			}
			buf.SetCursor(n)

		case "select range":
			answer, err := ui.Prompt("Range (start:end, 1-based)")
			if err != nil {
				continue
			}
			start, end, perr := parseRange(answer, buf.LineCount())
			if perr != nil {
				ui.Notify(host.LevelError, perr.Error())
				continue
			}
			buf.SetSelection(start, end)

		case "clear selection":
			buf.ClearSelection()

		case "show":
			showBuffer(buf)

		case "write":
			if err := buf.Save(); err != nil {
				ui.Notify(host.LevelError, err.Error())
				continue
			}
			ui.Notify(host.LevelInfo, fmt.Sprintf("wrote %s", buf.Path()))

		case "reset":
			sess.Reset()
			ui.Notify(host.LevelInfo, "session reset")

		case "quit":
			return nil
		}
	}
}

// promptLine asks for a 1-based line number and returns it 0-based.
func promptLine(ui *terminalUI, buf *host.LineBuffer) (int, error) {
	answer, err := ui.Prompt("Line (1-based)")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n < 1 || n > buf.LineCount() {
		ui.Notify(host.LevelError, fmt.Sprintf("no line %q", answer))
		return 0, errors.Errorf("bad line %q", answer)
	}
	return n - 1, nil
}

// parseRange parses "start:end" (1-based, inclusive) into 0-based indices.
func parseRange(answer string, lineCount int) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(answer), ":", 2)
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("range must look like start:end, got %q", answer)
	}
	start, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	end, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || start < 1 || end < start || end > lineCount {
		return 0, 0, errors.Errorf("invalid range %q for %d lines", answer, lineCount)
	}
	return start - 1, end - 1, nil
}

// showBuffer prints the document with a cursor marker and selection bars.
func showBuffer(buf *host.LineBuffer) {
	selStart, selEnd, hasSel := buf.Selection()
	for i := 0; i < buf.LineCount(); i++ {
		line, _ := buf.Line(i)
		marker := " "
		if i == buf.CursorLine() {
			marker = ">"
		}
		sel := " "
		if hasSel && i >= selStart && i <= selEnd {
			sel = "|"
		}
		pterm.Printf("%s%s %4d  %s\n", marker, sel, i+1, line)
	}
}
