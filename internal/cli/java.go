package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/memoryindex/native/pkg/jni"
)

func newJavaCmd(natives []jni.Method) *cobra.Command {
	var library string

	cmd := &cobra.Command{
		Use:   "java",
		Short: "Print the Java declarations of the natives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJava(cmd.OutOrStdout(), natives, library)
		},
	}

	cmd.Flags().StringVar(&library, "library", "memoryindex", "Name passed to System.loadLibrary")
	return cmd
}

// writeJava emits one class skeleton per declaring class, in class order.
func writeJava(w io.Writer, natives []jni.Method, library string) error {
	byClass := make(map[string][]jni.Method)
	var classes []string
	for _, m := range natives {
		class := strings.ReplaceAll(m.Class, "/", ".")
		if _, ok := byClass[class]; !ok {
			classes = append(classes, class)
		}
		byClass[class] = append(byClass[class], m)
	}
	sort.Strings(classes)

	for i, class := range classes {
		if i > 0 {
			fmt.Fprintln(w)
		}

		pkg, simple := "", class
		if dot := strings.LastIndexByte(class, '.'); dot >= 0 {
			pkg, simple = class[:dot], class[dot+1:]
		}
		if pkg != "" {
			fmt.Fprintf(w, "package %s;\n\n", pkg)
		}
		fmt.Fprintf(w, "public class %s {\n", simple)
		fmt.Fprintf(w, "  static {\n    System.loadLibrary(%q);\n  }\n", library)
		for _, m := range byClass[class] {
			decl, err := m.JavaDecl()
			if err != nil {
				return fmt.Errorf("%s: %w", m, err)
			}
			fmt.Fprintf(w, "\n  %s\n", decl)
		}
		fmt.Fprintln(w, "}")
	}
	return nil
}
