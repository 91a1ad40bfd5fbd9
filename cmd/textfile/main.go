// Command textfile prints the contents of text files, optionally creating
// missing ones.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/forgekit/textfile"
)

type options struct {
	create bool
	quiet  bool
	root   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "textfile",
		Short:         "Load text files with classified failures",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newCatCmd())
	return cmd
}

func newCatCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "cat [paths...]",
		Short: "Print file contents",
		Long: `Print the contents of each path. Without --create, a missing or
unreadable file is reported and the command exits nonzero. With --create,
missing files are created empty; any other failure stops the process.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCat(cmd, args, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.create, "create", false, "create missing files instead of failing")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress per-file headers")
	cmd.Flags().StringVar(&opts.root, "root", "", "confine paths beneath this directory")
	return cmd
}

func runCat(cmd *cobra.Command, args []string, opts options) error {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level: log.InfoLevel,
	})

	lopts := []textfile.Option{textfile.WithLogger(logger)}
	if opts.root != "" {
		lopts = append(lopts, textfile.WithRoot(opts.root))
	}
	loader := textfile.New(lopts...)

	multi := len(args) > 1
	failed := 0
	for _, path := range args {
		var (
			text string
			err  error
		)
		if opts.create {
			text, err = loader.LoadOrCreate(path)
		} else {
			text, err = loader.Load(path)
		}
		if err != nil {
			logger.Error("load failed", "path", path, "code", textfile.CodeOf(err), "err", err)
			failed++
			continue
		}
		if multi && !opts.quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "==> %s <==\n", path)
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d paths failed", failed, len(args))
	}
	return nil
}
