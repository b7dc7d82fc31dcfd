package node

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	walletapp "github.com/spacemeshos/smwallet/app"
	"github.com/spacemeshos/smwallet/cmd"
	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/config"
	"github.com/spacemeshos/smwallet/syncer"
)

const defaultWaitTimeout = 5 * time.Minute

// autoConfirmPreset is the only preset that may skip proving the backup.
const autoConfirmPreset = "standalone"

var errAutoConfirm = fmt.Errorf("--confirm requires the %s preset", autoConfirmPreset)

func checkAutoConfirm(conf *config.Config, confirm bool) error {
	if confirm && conf.Preset != autoConfirmPreset {
		return errAutoConfirm
	}
	return nil
}

// GetCommand returns the smwallet root command.
func GetCommand() *cobra.Command {
	conf := config.DefaultConfig()
	root := &cobra.Command{
		Use:          "smwallet",
		Short:        "Spacemesh light wallet",
		SilenceUsage: true,
	}
	configPath := cmd.AddFlags(root.PersistentFlags(), &conf)
	timeout := root.PersistentFlags().Duration("wait-timeout", defaultWaitTimeout,
		"how long a command waits for the wallet to reach the expected state")

	withApp := func(c *cobra.Command, fn func(ctx context.Context, app *App) error) error {
		if err := configure(c, *configPath, &conf); err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return run(ctx, &conf, fn)
	}

	root.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "run the wallet until interrupted",
		RunE: func(c *cobra.Command, _ []string) error {
			return withApp(c, func(ctx context.Context, app *App) error {
				<-ctx.Done()
				return nil
			})
		},
	})

	var confirm bool
	create := &cobra.Command{
		Use:   "create",
		Short: "create a new wallet and back up its recovery phrase",
		RunE: func(c *cobra.Command, _ []string) error {
			return withApp(c, func(ctx context.Context, app *App) error {
				if err := checkAutoConfirm(app.Config, confirm); err != nil {
					return err
				}
				ctx, cancel := context.WithTimeout(ctx, *timeout)
				defer cancel()
				return createWallet(ctx, app, c.InOrStdin(), c.OutOrStdout(), confirm)
			})
		},
	}
	create.Flags().BoolVar(&confirm, "confirm", false,
		"solve the backup challenge from the displayed phrase (standalone preset only)")
	_ = create.Flags().MarkHidden("confirm")
	root.AddCommand(create)

	var (
		phrase   string
		birthday uint64
	)
	restore := &cobra.Command{
		Use:   "restore",
		Short: "restore a wallet from its recovery phrase",
		RunE: func(c *cobra.Command, _ []string) error {
			return withApp(c, func(ctx context.Context, app *App) error {
				ctx, cancel := context.WithTimeout(ctx, *timeout)
				defer cancel()
				return restoreWallet(ctx, app, c.OutOrStdout(), phrase, types.Height(birthday))
			})
		},
	}
	restore.Flags().StringVar(&phrase, "phrase", "", "space separated recovery phrase")
	restore.Flags().Uint64Var(&birthday, "birthday", 0, "height the wallet was created at; 0 uses the network default")
	_ = restore.MarkFlagRequired("phrase")
	root.AddCommand(restore)

	root.AddCommand(&cobra.Command{
		Use:   "nuke",
		Short: "wipe the credentials and databases of the wallet",
		RunE: func(c *cobra.Command, _ []string) error {
			return withApp(c, func(ctx context.Context, app *App) error {
				ctx, cancel := context.WithTimeout(ctx, *timeout)
				defer cancel()
				return nukeWallet(ctx, app, c.OutOrStdout())
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "synchronize and print balance and history",
		RunE: func(c *cobra.Command, _ []string) error {
			return withApp(c, func(ctx context.Context, app *App) error {
				ctx, cancel := context.WithTimeout(ctx, *timeout)
				defer cancel()
				return printStatus(ctx, app, c.OutOrStdout())
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "print the version",
		Run: func(c *cobra.Command, _ []string) {
			fmt.Fprintf(c.OutOrStdout(), "%s %s (%s)\n", cmd.Version, cmd.Commit, cmd.Branch)
		},
	})
	return root
}

// configure loads preset and config file and applies the command line flags
// on top of them.
func configure(c *cobra.Command, configPath string, conf *config.Config) error {
	changed := map[string]string{}
	c.Flags().Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})
	if err := LoadConfig(conf, conf.Preset, configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	for name, value := range changed {
		if err := c.Flags().Set(name, value); err != nil {
			return fmt.Errorf("apply flag %s: %w", name, err)
		}
	}
	return nil
}

func run(ctx context.Context, conf *config.Config, fn func(context.Context, *App) error) error {
	app := New(WithConfig(conf))
	if err := app.Lock(); err != nil {
		return err
	}
	defer app.Unlock()
	if err := app.Initialize(); err != nil {
		return fmt.Errorf("initialize wallet: %w", err)
	}
	launchCtx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()
		app.Cleanup(cleanupCtx)
	}()
	if err := app.Launch(launchCtx); err != nil {
		return err
	}
	return fn(launchCtx, app)
}

// resolved is true once the machine left the splash route or got stuck on it.
func resolved(s walletapp.State) bool {
	return s.Route.Current() != types.RouteWelcome ||
		s.Initialization == types.Failed ||
		s.Initialization == types.KeysMissing
}

func failed(s walletapp.State) error {
	if s.Initialization == types.Failed {
		return fmt.Errorf("wallet failed: %s", s.LastError)
	}
	if s.Initialization == types.KeysMissing {
		return errors.New("wallet databases exist without credentials, nuke the wallet to start over")
	}
	return nil
}

func createWallet(ctx context.Context, app *App, in io.Reader, out io.Writer, confirm bool) error {
	state, err := app.WaitState(ctx, resolved)
	if err != nil {
		return err
	}
	if err := failed(state); err != nil {
		return err
	}
	if state.Initialization != types.Uninitialized {
		return errors.New("a wallet already exists")
	}
	if err := app.Send(ctx, walletapp.CreateNewWallet{}); err != nil {
		return err
	}
	state, err = app.WaitState(ctx, func(s walletapp.State) bool {
		return s.Initialization == types.Failed ||
			(s.Route.Current() == types.RoutePhraseDisplay && s.PhraseDisplay.Phrase.Len() > 0)
	})
	if err != nil {
		return err
	}
	if err := failed(state); err != nil {
		return err
	}
	phrase := state.PhraseDisplay.Phrase
	fmt.Fprintln(out, "Write down your recovery phrase:")
	for i, word := range phrase.Words() {
		fmt.Fprintf(out, "%2d. %s\n", i+1, word)
	}
	fmt.Fprintf(out, "Birthday height: %d\n", state.Wallet.Birthday)
	if err := app.Send(ctx, walletapp.PhraseDisplayFinished{}); err != nil {
		return err
	}
	state, err = app.WaitState(ctx, func(s walletapp.State) bool {
		return s.Route.Current() == types.RoutePhraseValidation
	})
	if err != nil {
		return err
	}
	return validatePhrase(ctx, app, state, phrase, bufio.NewScanner(in), out, confirm)
}

// validatePhrase solves the challenge locally first so that only a matching
// set of words reaches the machine.
func validatePhrase(
	ctx context.Context,
	app *App,
	state walletapp.State,
	phrase types.RecoveryPhrase,
	scanner *bufio.Scanner,
	out io.Writer,
	confirm bool,
) error {
	challenge := state.PhraseValidation.Challenge
	positions := challenge.MissingPositions()
	words := make([]string, challenge.Len())
	for {
		solved := challenge
		for i, group := range challenge.Groups() {
			word := phrase.Word(positions[i])
			for !confirm {
				shown := group.Words
				shown[group.Missing] = "____"
				fmt.Fprintf(out, "word bank: %s\n%s\nmissing word #%d: ",
					strings.Join(solved.WordBank(), " "), strings.Join(shown, " "), positions[i]+1)
				if !scanner.Scan() {
					if err := scanner.Err(); err != nil {
						return fmt.Errorf("read word: %w", err)
					}
					return io.ErrUnexpectedEOF
				}
				word = strings.TrimSpace(scanner.Text())
				_, err := solved.Apply(i, word)
				if err == nil {
					break
				}
				fmt.Fprintf(out, "%v\n", err)
			}
			next, err := solved.Apply(i, word)
			if err != nil {
				return err
			}
			solved = next
			words[i] = word
		}
		if solved.Valid() {
			break
		}
		fmt.Fprintln(out, "The words don't match the phrase, try again.")
	}
	for i, word := range words {
		if err := app.Send(ctx, walletapp.ApplyValidationWord{Group: i, Word: word}); err != nil {
			return err
		}
	}
	state, err := app.WaitState(ctx, func(s walletapp.State) bool {
		return s.Route.Current() == types.RouteHome || s.Initialization == types.Failed
	})
	if err != nil {
		return err
	}
	if err := failed(state); err != nil {
		return err
	}
	fmt.Fprintln(out, "Recovery phrase confirmed.")
	return nil
}

func restoreWallet(ctx context.Context, app *App, out io.Writer, phrase string, birthday types.Height) error {
	state, err := app.WaitState(ctx, resolved)
	if err != nil {
		return err
	}
	if err := failed(state); err != nil {
		return err
	}
	if state.Initialization != types.Uninitialized {
		return errors.New("a wallet already exists")
	}
	if err := app.Send(ctx, walletapp.ImportWallet{Phrase: phrase, Birthday: birthday}); err != nil {
		return err
	}
	state, err = app.WaitState(ctx, func(s walletapp.State) bool {
		return s.Route.Current() == types.RouteHome || s.Initialization == types.Failed
	})
	if err != nil {
		return err
	}
	if err := failed(state); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wallet restored from height %d.\n", state.Wallet.Birthday)
	return nil
}

func nukeWallet(ctx context.Context, app *App, out io.Writer) error {
	before, err := app.WaitState(ctx, resolved)
	if err != nil {
		return err
	}
	if err := app.Send(ctx, walletapp.NukeWallet{}); err != nil {
		return err
	}
	state, err := app.WaitState(ctx, func(s walletapp.State) bool {
		return (s.Initialization == types.Failed && s.LastError != before.LastError) ||
			(s.Initialization == types.Uninitialized && s.Route.Current() == types.RouteOnboarding)
	})
	if err != nil {
		return err
	}
	if err := failed(state); err != nil {
		return err
	}
	fmt.Fprintln(out, "Wallet wiped.")
	return nil
}

func printStatus(ctx context.Context, app *App, out io.Writer) error {
	state, err := app.WaitState(ctx, resolved)
	if err != nil {
		return err
	}
	if err := failed(state); err != nil {
		return err
	}
	switch state.Route.Current() {
	case types.RouteHome:
	case types.RouteOnboarding:
		return errors.New("no wallet, create or restore one first")
	default:
		return fmt.Errorf("wallet is on %s, finish the backup with create", state.Route.Current())
	}
	snapshot, err := app.WaitSnapshot(ctx, func(s syncer.Snapshot) bool { return s.Refreshes > 0 })
	if err != nil {
		return err
	}
	writeSnapshot(out, snapshot)
	return nil
}

func writeSnapshot(out io.Writer, s syncer.Snapshot) {
	fmt.Fprintf(out, "status:   %s (%.0f%%)\n", s.Status.Status, s.Percentage*100)
	fmt.Fprintf(out, "balance:  %s verified, %s total\n", s.Balance.Verified, s.Balance.Total)
	fmt.Fprintln(out, "history:")
	for _, ev := range s.Events {
		ts := "-"
		if !ev.Timestamp.IsZero() {
			ts = ev.Timestamp.UTC().Format(time.DateTime)
		}
		fmt.Fprintf(out, "  %-19s %-8s %s\n", ts, types.EventKind(ev.State), describe(ev.State))
	}
}

func describe(state types.EventState) string {
	switch s := state.(type) {
	case types.SentEvent:
		return fmt.Sprintf("%s to %s fee %s", s.Amount, s.Address, s.Fee)
	case types.PendingEvent:
		return fmt.Sprintf("%s %s", s.Amount, s.Address)
	case types.ReceivedEvent:
		return fmt.Sprintf("%s at height %d", s.Amount, s.Height)
	case types.FailedEvent:
		return fmt.Sprintf("%s to %s", s.Amount, s.Address)
	case types.ShieldedEvent:
		return s.Amount.String()
	case types.WalletImportEvent:
		return fmt.Sprintf("imported at height %d", s.Height)
	default:
		return ""
	}
}
