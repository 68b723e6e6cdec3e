package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/memoryindex/native/pkg/jni"
)

func newListCmd(natives []jni.Method) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the natives implemented by the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tSYMBOL")
			for _, m := range natives {
				fmt.Fprintf(w, "%s\t%s\n", m, m.ShortName())
			}
			return w.Flush()
		},
	}
}
