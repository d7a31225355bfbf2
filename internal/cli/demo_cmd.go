package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/parcel/internal/demo"
	"github.com/spf13/cobra"
)

func newDemoCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the sample parcel, optionally storing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := demo.Build()
			out := cmd.OutOrStdout()
			fmt.Fprint(out, root.Describe())
			if !save {
				return nil
			}

			trees, err := app.trees()
			if err != nil {
				return err
			}
			id, err := trees.Save(context.Background(), root)
			if err != nil {
				return fmt.Errorf("saving demo parcel: %w", err)
			}
			fmt.Fprintf(out, "Saved %s (%s)\n", root.Label(), id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Store the sample parcel")
	return cmd
}
