package cmd

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/lnkname/internal/errors"
	"github.com/yarlson/lnkname/internal/fs"
	"github.com/yarlson/lnkname/internal/naming"
)

var errNoRemainingName = stderrors.New("Link error has no remaining name")

func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain [file]",
		Short: "🔍 Describe a serialized link error",
		Long: `Reads a link error document (from a file, or stdin when the file is '-' or
omitted) and prints its diagnostic message and structured fields.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, _ := cmd.Flags().GetBool("detail")
			remainingOnly, _ := cmd.Flags().GetBool("remaining-only")

			source := fs.Stdio
			if len(args) == 1 {
				source = args[0]
			}

			files := fs.New(cmd.InOrStdin(), cmd.OutOrStdout())
			data, err := files.ReadDocument(source)
			if err != nil {
				return err
			}

			linkErr, err := naming.DecodeLinkError(data)
			if err != nil {
				return &errors.DocumentDecodeError{Source: source, Err: err}
			}

			if remainingOnly {
				remaining := linkErr.LinkRemainingName()
				if remaining == nil {
					return errNoRemainingName
				}
				printf(cmd, "%s\n", remaining)
				return nil
			}

			return describe(GetWriter(cmd), linkErr, detail)
		},
	}

	cmd.Flags().BoolP("detail", "d", false, "Include the link resolved object in the message")
	cmd.Flags().BoolP("remaining-only", "r", false, "Print only the link remaining name")
	return cmd
}

// describe writes the message of e followed by each set link field
func describe(w *Writer, e *naming.LinkError, detail bool) error {
	w.Writeln(Error(e.ErrorDetail(detail)))

	field := func(label string, value any) {
		w.Printf(Plain("   %-22s"), label+":").
			Writeln(Colored(fmt.Sprint(value), ColorCyan))
	}

	if msg := e.LinkExplanation(); msg != "" {
		field("Link explanation", msg)
	}
	if n := e.LinkResolvedName(); n != nil {
		field("Link resolved name", n)
	}
	if obj := e.LinkResolvedObj(); obj != nil {
		field("Link resolved object", obj)
	}
	if n := e.LinkRemainingName(); n != nil {
		field("Link remaining name", n)
	}
	if cause := e.Cause(); cause != nil {
		field("Root cause", cause)
	}

	if n := e.LinkRemainingName(); n != nil && !n.IsEmpty() {
		w.WriteString("\n").
			Writeln(Info("Resume resolution from " + n.String()))
	}
	return w.Err()
}
