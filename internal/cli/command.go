// Package cli implements the reverse command line.
package cli

import (
	"context"
	"errors"
	"io"
	"math"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/simonhull/bytereverse"
	"github.com/simonhull/bytereverse/internal/flags"
	"github.com/simonhull/bytereverse/internal/logger"
	"github.com/simonhull/bytereverse/internal/types"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// NewCommand returns the reverse root command.
//
// Flag parsing is done by the flags package rather than cobra, so bundled
// flags ("-fv") and the flags-before-filenames rule behave exactly as
// documented. The cobra flag set only exists to render help.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reverse [-fvh] <input-file> <output-file>",
		Short: "Reverse the bytes of a file",
		Long: `reverse reads <input-file> completely into memory, reverses it byte by
byte and writes the result to <output-file>.

Options must come before the filenames. An existing <output-file> is never
replaced unless -f is given.

The input is buffered whole and a reversed copy is built next to it, so about
twice its size must fit in memory. When a runtime memory limit (GOMEMLIMIT) is
set, inputs above half of it are refused instead of being loaded.`,
		Example: `  reverse in.bin out.bin
  reverse -v in.bin out.bin
  reverse -fv in.bin existing.bin`,
		Args:                  cobra.ArbitraryArgs,
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		RunE:                  run,
	}

	cmd.Flags().BoolP("force", string(flags.Force), false, "Force mode to allow destination file overwrites")
	cmd.Flags().BoolP("verbose", string(flags.Verbose), false, "Verbose mode to print out steps of the process")
	cmd.Flags().BoolP("help", string(flags.Help), false, "Help to see this menu")

	return cmd
}

// Run executes the command with args (excluding the program name) and
// returns the process exit code. Errors are printed to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := NewCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		cmd.PrintErrln("Error:", err)
		if errors.Is(err, types.ErrUsage) {
			cmd.PrintErr("\n" + cmd.UsageString())
		}
		return ExitFailure
	}
	return ExitOK
}

var (
	errArgCount  = errors.New("wrong number of arguments")
	errPlacement = errors.New("command line options must come before filenames")
	errNoForce   = errors.New("pass -f to force an overwrite")
)

func run(cmd *cobra.Command, args []string) error {
	set := flags.Parse(args)

	if set.Help {
		return cmd.Help()
	}

	if len(args) < 2 {
		return &types.Error{Kind: types.KindUsageError, Err: errArgCount}
	}

	if flags.Trailing(args, 2, flags.Verbose, flags.Force) {
		return &types.Error{Kind: types.KindUsageError, Err: errPlacement}
	}

	log := logger.New(cmd.OutOrStdout(), set.Verbose)

	if set.Verbose {
		v := bytereverse.GetVersionInfo()
		log.Info("running in verbose mode", "version", v.Version, "commit", v.GitCommit)
	}
	if set.Force {
		log.Info("running in forced mode")
	}

	src, dst := args[len(args)-2], args[len(args)-1]

	log.Debug("checking for existing destination file", "path", dst)

	if !set.Force && bytereverse.Exists(dst) {
		return &types.Error{Kind: types.KindDestinationExists, Path: dst, Err: errNoForce}
	}

	opts := []bytereverse.Option{
		bytereverse.WithLogger(log),
		bytereverse.WithMaxSize(inputLimit()),
	}

	data, err := bytereverse.Load(src, opts...)
	if err != nil {
		return err
	}

	reversed, err := bytereverse.ReverseContext(cmd.Context(), data, opts...)
	if err != nil {
		return err
	}

	log.Debug("reversed input file in memory", "bytes", len(reversed))

	if _, err := bytereverse.Write(dst, reversed, opts...); err != nil {
		return err
	}

	log.Debug("successfully finished reversing file", "path", dst)

	return nil
}

// inputLimit returns the largest input worth loading: half the runtime's soft
// memory limit, since the source and its reversed copy are live together.
// Zero means no limit is set.
func inputLimit() int64 {
	limit := debug.SetMemoryLimit(-1)
	if limit <= 0 || limit == math.MaxInt64 {
		return 0
	}
	return limit / 2
}
