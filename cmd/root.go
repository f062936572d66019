package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yarlson/lnkname/internal/errors"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// NewRootCommand creates a new root command (testable)
func NewRootCommand() *cobra.Command {
	var (
		colors string
		emoji  bool
	)

	rootCmd := &cobra.Command{
		Use:   "lnkname",
		Short: "🔗 Inspect and produce resumable link resolution errors",
		Long: `Lnkname works with link errors: structured reports of a failed link
resolution that record how much of the link name resolved, to what object,
what remains, and why it failed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (built %s)", version, buildTime),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return SetGlobalConfig(colors, emoji)
		},
	}

	rootCmd.PersistentFlags().StringVar(&colors, "colors", "auto", "when to use colors: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&emoji, "emoji", true, "enable emoji in output")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newExplainCmd())
	return rootCmd
}

// SetVersion sets the version information for the CLI
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		w := GetErrorWriter()
		writeError(w, err)
		os.Exit(1)
	}
}

// writeError renders a command failure with whatever context the error carries
func writeError(w *Writer, err error) {
	w.Writeln(Error(err.Error()))

	var (
		notExists *errors.FileNotExistsError
		decodeErr *errors.DocumentDecodeError
		nameErr   *errors.InvalidNameError
	)
	switch {
	case stderrors.As(err, &notExists):
		w.WriteString("   ").Writeln(Info("Pass '-' to read the document from stdin"))
	case stderrors.As(err, &decodeErr):
		if cause := stderrors.Unwrap(decodeErr); cause != nil {
			w.WriteString("   ").Writeln(Colored(cause.Error(), ColorGray))
		}
	case stderrors.As(err, &nameErr):
		w.WriteString("   ").Writeln(Info(`Separate components with '/'; escape '/' and '\' with '\'`))
	}
}
