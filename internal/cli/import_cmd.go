package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/parcel/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a box tree from a JSON or YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadImportSchema(args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}
			if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
				return fmt.Errorf("invalid manifest %s:\n%w", args[0], errors.Join(errs...))
			}
			root, err := importer.Convert(schema)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprint(out, root.Describe())
				return nil
			}

			trees, err := app.trees()
			if err != nil {
				return err
			}
			id, err := trees.Save(context.Background(), root)
			if err != nil {
				return fmt.Errorf("saving imported parcel: %w", err)
			}
			fmt.Fprintf(out, "Imported %s (%s)\n", root.Label(), id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and describe without storing")
	return cmd
}
