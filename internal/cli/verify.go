package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/memoryindex/native/pkg/debug"
	"github.com/memoryindex/native/pkg/jni"
)

// ErrMissingSymbols is returned by verify when a native is not exported.
var ErrMissingSymbols = errors.New("missing native symbols")

func newVerifyCmd(natives []jni.Method) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "verify [library]",
		Short: "Check that every native is exported",
		Long: `verify reads the dynamic symbol table of a built shared library (ELF or
Mach-O) and fails if the short name of any native is absent. With --source it
checks the //export directives of a Go package directory instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				symbols []string
				err     error
			)
			switch {
			case source != "" && len(args) == 0:
				symbols, err = jni.ScanExports(source)
			case source == "" && len(args) == 1:
				symbols, err = jni.ReadLibrarySymbols(args[0])
			default:
				return errors.New("specify either a library or --source")
			}
			if err != nil {
				return err
			}
			debug.Debug("verify: %d symbols read", len(symbols))

			missing := missingSymbols(natives, symbols)
			for _, m := range missing {
				fmt.Fprintf(cmd.ErrOrStderr(), "missing %s (%s)\n", m.ShortName(), m)
			}
			if len(missing) > 0 {
				return fmt.Errorf("%w: %d of %d", ErrMissingSymbols, len(missing), len(natives))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d natives exported\n", len(natives))
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "Go package directory to scan for //export directives")
	return cmd
}

// missingSymbols returns the natives whose short or long name is not in
// symbols.
func missingSymbols(natives []jni.Method, symbols []string) []jni.Method {
	have := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		have[s] = true
	}

	var missing []jni.Method
	for _, m := range natives {
		switch {
		case have[m.ShortName()]:
		case have[m.LongName()]:
			debug.Warn("verify: %s is exported only as %s", m, m.LongName())
		default:
			missing = append(missing, m)
		}
	}
	return missing
}
