package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yarlson/lnkname/internal/errors"
	"github.com/yarlson/lnkname/internal/name"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <name>",
		Short: "🧩 Split a composite name into its components",
		Long:  "Parses a slash separated composite name and lists its components in order.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := name.Parse(args[0])
			if err != nil {
				return &errors.InvalidNameError{Name: args[0], Err: err}
			}

			w := GetWriter(cmd)
			w.Write(Link(n.String())).
				Printf(Colored(" (%d components)", ColorGray), n.Size()).
				WriteString("\n")
			for i, comp := range n.Components() {
				w.Printf(Plain("   [%d] "), i).
					Writeln(Colored(comp, ColorCyan))
			}
			return w.Err()
		},
	}
}
