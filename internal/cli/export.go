package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"impractical.co/learnphoto/content"
)

func newExportCommand(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Prints the site's content as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			if out == "" {
				return content.WriteJSON(cmd.OutOrStdout(), store)
			}
			f, err := os.Create(out) // #nosec G304
			if err != nil {
				return fmt.Errorf("error creating %s: %w", out, err)
			}
			if err := content.WriteJSON(f, store); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "file to write to instead of stdout")
	return cmd
}
