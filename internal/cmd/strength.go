package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/pitmydoro/backend/internal/domain/valueobject"
	"github.com/pitmydoro/backend/internal/integration/entrypoint/dto"
	"github.com/pitmydoro/backend/internal/ui"
)

// ErrBelowMinimum is returned by --check when the password is too short to register.
var ErrBelowMinimum = errors.New("password does not meet the minimum length")

type strengthOptions struct {
	json        bool
	check       bool
	interactive bool
}

func newStrengthCmd() *cobra.Command {
	opts := &strengthOptions{}

	cmd := &cobra.Command{
		Use:   "strength [password]",
		Short: "Score a password",
		Long: `Score a password and list which requirements it meets.

Without an argument the password is read from stdin. On a terminal the
input is hidden; otherwise the first line of stdin is used.

Examples:
  pitmydoro strength 'Abcdef1!'
  echo -n 'hunter2' | pitmydoro strength --json
  pitmydoro strength --interactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrength(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the assessment as JSON (same as --format json)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Exit with an error when the minimum length is not met")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Show a live meter while typing")

	return cmd
}

func runStrength(cmd *cobra.Command, args []string, opts *strengthOptions) error {
	format, _ := cmd.Flags().GetString("format")
	if opts.json {
		format = "json"
	}
	out := ui.New(cmd.OutOrStdout(), format)

	var strength valueobject.PasswordStrength
	switch {
	case opts.interactive:
		s, err := runMeter(cmd, out)
		if err != nil {
			return err
		}
		strength = s
	default:
		password, err := passwordFromArgs(cmd, args)
		if err != nil {
			return err
		}
		strength = valueobject.EvaluatePasswordStrength(password)
	}

	if err := printStrength(out, strength); err != nil {
		return err
	}

	if opts.check && !strength.MeetsMinimum() {
		return ErrBelowMinimum
	}
	return nil
}

// passwordFromArgs takes the argument, or reads stdin when there is none.
func passwordFromArgs(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && ui.IsTerminal(f) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	line, _, _ := strings.Cut(string(raw), "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func runMeter(cmd *cobra.Command, out *ui.UI) (valueobject.PasswordStrength, error) {
	program := tea.NewProgram(
		ui.NewMeterModel(ui.NewStyles(true)),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
	)

	final, err := program.Run()
	if err != nil {
		return valueobject.PasswordStrength{}, fmt.Errorf("interactive meter failed: %w", err)
	}

	meter, ok := final.(ui.MeterModel)
	if !ok || !meter.Accepted() {
		return valueobject.PasswordStrength{}, errors.New("cancelled")
	}
	return meter.Strength(), nil
}

func printStrength(out *ui.UI, strength valueobject.PasswordStrength) error {
	resp := dto.ToPasswordStrengthResponse(strength)

	switch out.Mode {
	case ui.OutputModeJSON:
		enc := json.NewEncoder(out.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case ui.OutputModeYAML:
		enc := yaml.NewEncoder(out.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprint(out.Writer, ui.RenderStrength(out.Styles, strength))
		return err
	}
}
