package cmd

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/yarlson/lnkname/internal/errors"
	"github.com/yarlson/lnkname/internal/fs"
	"github.com/yarlson/lnkname/internal/name"
	"github.com/yarlson/lnkname/internal/naming"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "🛠️  Build a serialized link error",
		Long: `Builds a link error from the given fields and writes its JSON document.
Unset flags leave the matching field absent; an explicitly empty name
flag records the empty name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			explanation, _ := flags.GetString("explanation")
			output, _ := flags.GetString("output")

			linkErr := naming.NewLinkError(explanation)

			if flags.Changed("link-explanation") {
				msg, _ := flags.GetString("link-explanation")
				linkErr.SetLinkExplanation(msg)
			}
			if flags.Changed("object") {
				obj, _ := flags.GetString("object")
				linkErr.SetLinkResolvedObj(obj)
			}
			if flags.Changed("cause") {
				cause, _ := flags.GetString("cause")
				linkErr.SetCause(stderrors.New(cause))
			}

			setters := []struct {
				flag string
				set  func(*name.Name)
			}{
				{"resolved", linkErr.SetLinkResolvedName},
				{"remaining", linkErr.SetLinkRemainingName},
				{"base-resolved", linkErr.SetResolvedName},
				{"base-remaining", linkErr.SetRemainingName},
			}
			for _, s := range setters {
				if !flags.Changed(s.flag) {
					continue
				}
				raw, _ := flags.GetString(s.flag)
				n, err := name.Parse(raw)
				if err != nil {
					return &errors.InvalidNameError{Name: raw, Err: err}
				}
				s.set(n)
			}

			data, err := linkErr.MarshalJSON()
			if err != nil {
				return err
			}

			files := fs.New(cmd.InOrStdin(), cmd.OutOrStdout())
			if err := files.WriteDocument(output, append(data, '\n')); err != nil {
				return err
			}

			if output != "" && output != fs.Stdio {
				GetWriter(cmd).
					Writeln(Success("Wrote link error to " + output)).
					WriteString("   ").
					Writeln(Colored(linkErr.Error(), ColorGray))
			}
			return nil
		},
	}

	cmd.Flags().StringP("explanation", "e", "", "Error message")
	cmd.Flags().StringP("link-explanation", "l", "", "Why link resolution failed")
	cmd.Flags().String("resolved", "", "Part of the link name that resolved")
	cmd.Flags().String("remaining", "", "Part of the link name left unresolved")
	cmd.Flags().String("object", "", "Textual form of the object the resolved link name is bound to")
	cmd.Flags().String("cause", "", "Underlying error message")
	cmd.Flags().String("base-resolved", "", "Resolved part of the name that led to the link")
	cmd.Flags().String("base-remaining", "", "Unresolved part of the name that led to the link")
	cmd.Flags().StringP("output", "o", fs.Stdio, "Write the document to this file instead of stdout")
	return cmd
}
