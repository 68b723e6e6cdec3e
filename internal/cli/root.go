// Package cli implements jnisym, the tool that derives, lists and verifies
// the JNI symbols of the native library.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/memoryindex/native/pkg/debug"
	"github.com/memoryindex/native/pkg/jni"
	"github.com/memoryindex/native/pkg/memoryindex"
)

// logSetup tracks a file logger installed by --log-file.
type logSetup struct {
	file *debug.Logger
	prev *debug.Logger
}

// open installs a file logger as the default.
func (s *logSetup) open(path string, level debug.Level) error {
	l, err := debug.NewFileLogger(path, "jnisym", debug.DefaultFlags)
	if err != nil {
		return err
	}
	l.SetLevel(level)
	s.file = l
	s.prev = debug.SetDefault(l)
	debug.Info("logging to %s", path)
	return nil
}

// close restores the previous default logger and closes the file.
func (s *logSetup) close() error {
	if s.file == nil {
		return nil
	}
	debug.SetDefault(s.prev)
	err := s.file.Close()
	s.file, s.prev = nil, nil
	return err
}

// NewRootCommand builds the jnisym command tree over the given natives. The
// returned function closes the log file opened by --log-file and must be
// called once the command has executed.
func NewRootCommand(natives []jni.Method) (*cobra.Command, func() error) {
	var (
		logLevel string
		logFile  string
		logs     logSetup
	)

	rootCmd := &cobra.Command{
		Use:   "jnisym",
		Short: "Derive and verify JNI native method symbols",
		Long: `jnisym derives the exported symbol names the JVM resolves for native
methods, prints the natives implemented by libmemoryindex, and checks that a
built library exports every one of them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := debug.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			if logFile != "" {
				return logs.open(logFile, level)
			}
			debug.SetLevel(level)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file instead of stderr")

	rootCmd.AddCommand(
		newNameCmd(),
		newListCmd(natives),
		newVerifyCmd(natives),
		newJavaCmd(natives),
	)
	return rootCmd, logs.close
}

// Execute runs jnisym over the natives of libmemoryindex.
// This is called by main.main().
func Execute() {
	rootCmd, closeLog := NewRootCommand(memoryindex.Natives)
	err := rootCmd.Execute()
	if cerr := closeLog(); cerr != nil {
		fmt.Fprintln(os.Stderr, "Error: closing log file:", cerr)
		err = cerr
	}
	if err != nil {
		os.Exit(1)
	}
}
