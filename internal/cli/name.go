package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/memoryindex/native/pkg/jni"
)

func newNameCmd() *cobra.Command {
	var (
		descriptor string
		long       bool
	)

	cmd := &cobra.Command{
		Use:   "name <class> <method>",
		Short: "Print the exported symbol for a native method",
		Example: `  jnisym name org.apache.lucene.index.memory.MemoryIndex add
  jnisym name --long --descriptor '(II)I' org.apache.lucene.index.memory.MemoryIndex add`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := jni.Method{Class: args[0], Name: args[1], Descriptor: descriptor}

			if long {
				if descriptor == "" {
					return errors.New("--long requires --descriptor")
				}
				if err := m.Validate(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), m.LongName())
				return nil
			}

			if descriptor != "" {
				if err := m.Validate(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.ShortName())
			return nil
		},
	}

	cmd.Flags().StringVarP(&descriptor, "descriptor", "d", "", "Method descriptor, e.g. (II)I")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "Print the overload-qualified long name")
	return cmd
}
