package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/parcel/internal/cli/formatter"
	"github.com/alexanderramin/parcel/internal/domain"
	"github.com/alexanderramin/parcel/internal/importer"
	"github.com/spf13/cobra"
)

func newBoxCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "box",
		Short: "Manage stored boxes",
	}

	cmd.AddCommand(
		newBoxCreateCmd(app),
		newBoxAddCmd(app),
		newBoxNestCmd(app),
		newBoxRemoveCmd(app),
		newBoxShowCmd(app),
		newBoxTreeCmd(app),
		newBoxListCmd(app),
		newBoxDeleteCmd(app),
	)

	return cmd
}

func newBoxCreateCmd(app *App) *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty top-level box",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := app.trees()
			if err != nil {
				return err
			}
			id, err := trees.Save(context.Background(), domain.NewBox(label))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created box %s (%s)\n", label, id)
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Box label")
	_ = cmd.MarkFlagRequired("label")
	return cmd
}

func newBoxAddCmd(app *App) *cobra.Command {
	var boxID, kind, label, name, description, date, amount string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item or an empty box to a box",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			trees, err := app.trees()
			if err != nil {
				return err
			}
			parentID, err := resolveNodeID(ctx, trees, boxID)
			if err != nil {
				return err
			}

			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive needs a terminal")
				}
				if err := newItemForm(&kind, &name, &amount, &date).Run(); err != nil {
					return err
				}
				// The form collects one free-text field for every kind.
				label, description = name, name
			}
			if kind == "" {
				return fmt.Errorf("--kind is required (box|tool|electronic|accessory|receipt)")
			}

			item, err := nodeImportFromFlags(kind, label, name, description, amount, date)
			if err != nil {
				return err
			}
			if errs := importer.ValidateNode("item", item); len(errs) > 0 {
				return errors.Join(errs...)
			}
			node, err := importer.ConvertNode(item)
			if err != nil {
				return err
			}

			id, err := trees.AddNode(ctx, parentID, node)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to box %s (%s)\n", node.Kind(), formatter.ShortID(parentID), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&boxID, "box", "", "Target box ID or prefix")
	cmd.Flags().StringVar(&kind, "kind", "", "Node kind (box|tool|electronic|accessory|receipt)")
	cmd.Flags().StringVar(&label, "label", "", "Label of a new box")
	cmd.Flags().StringVar(&name, "name", "", "Name of a tool or electronic item")
	cmd.Flags().StringVar(&description, "description", "", "Description of an accessory")
	cmd.Flags().StringVar(&amount, "amount", "", "Receipt amount")
	cmd.Flags().StringVar(&date, "date", "", "Receipt date (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the item with a form")
	_ = cmd.MarkFlagRequired("box")
	return cmd
}

// nodeImportFromFlags maps command-line values onto the manifest form so
// that flags and files share one set of validation rules.
func nodeImportFromFlags(kind, label, name, description, amount, date string) (*importer.NodeImport, error) {
	item := &importer.NodeImport{
		Kind:        kind,
		Label:       label,
		Name:        name,
		Description: description,
		Date:        date,
	}
	if amount != "" {
		v, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --amount %q: %w", amount, err)
		}
		item.Amount = &v
	}
	return item, nil
}

func newBoxNestCmd(app *App) *cobra.Command {
	var boxID, childID string

	cmd := &cobra.Command{
		Use:   "nest",
		Short: "Move a stored node into a box",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			trees, err := app.trees()
			if err != nil {
				return err
			}
			parentID, err := resolveNodeID(ctx, trees, boxID)
			if err != nil {
				return err
			}
			nodeID, err := resolveNodeID(ctx, trees, childID)
			if err != nil {
				return err
			}
			if err := trees.Move(ctx, parentID, nodeID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s into %s\n", formatter.ShortID(nodeID), formatter.ShortID(parentID))
			return nil
		},
	}

	cmd.Flags().StringVar(&boxID, "box", "", "Target box ID or prefix")
	cmd.Flags().StringVar(&childID, "child", "", "Node ID or prefix to move")
	_ = cmd.MarkFlagRequired("box")
	_ = cmd.MarkFlagRequired("child")
	return cmd
}

func newBoxRemoveCmd(app *App) *cobra.Command {
	var boxID, childID string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a child, and everything inside it, from a box",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			trees, err := app.trees()
			if err != nil {
				return err
			}
			parentID, err := resolveNodeID(ctx, trees, boxID)
			if err != nil {
				return err
			}
			nodeID, err := resolveNodeID(ctx, trees, childID)
			if err != nil {
				return err
			}
			removed, err := trees.RemoveChild(ctx, parentID, nodeID)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not in box %s; nothing removed\n",
					formatter.ShortID(nodeID), formatter.ShortID(parentID))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", formatter.ShortID(nodeID), formatter.ShortID(parentID))
			return nil
		},
	}

	cmd.Flags().StringVar(&boxID, "box", "", "Box ID or prefix")
	cmd.Flags().StringVar(&childID, "child", "", "Child ID or prefix")
	_ = cmd.MarkFlagRequired("box")
	_ = cmd.MarkFlagRequired("child")
	return cmd
}

func newBoxShowCmd(app *App) *cobra.Command {
	var framed bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print the full description of a stored box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			trees, err := app.trees()
			if err != nil {
				return err
			}
			id, err := resolveNodeID(ctx, trees, args[0])
			if err != nil {
				return err
			}
			root, err := trees.Load(ctx, id)
			if err != nil {
				return err
			}

			text := root.Describe()
			if framed {
				title := domain.CoalesceStr(root.Label(), formatter.ShortID(id))
				text = formatter.RenderBox(title, strings.TrimRight(text, "\n")) + "\n"
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&framed, "framed", false, "Draw a border around the description")
	return cmd
}

func newBoxTreeCmd(app *App) *cobra.Command {
	var showIDs bool

	cmd := &cobra.Command{
		Use:   "tree ID",
		Short: "Render a stored box as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			trees, err := app.trees()
			if err != nil {
				return err
			}
			id, err := resolveNodeID(ctx, trees, args[0])
			if err != nil {
				return err
			}
			entries, err := trees.Outline(ctx, id)
			if err != nil {
				return err
			}

			items := make([]formatter.TreeItem, 0, len(entries))
			for _, e := range entries {
				item := formatter.TreeItem{
					Title:  e.Record.Title(),
					Kind:   e.Record.Kind,
					Level:  e.Depth,
					IsLast: e.IsLast,
				}
				if showIDs {
					item.Detail = formatter.ShortID(e.Record.ID)
				}
				items = append(items, item)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTree(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showIDs, "ids", false, "Show short node IDs")
	return cmd
}

func newBoxListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored top-level boxes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			trees, err := app.trees()
			if err != nil {
				return err
			}
			roots, err := trees.ListRoots(ctx)
			if err != nil {
				return err
			}

			summaries := make([]formatter.BoxSummary, 0, len(roots))
			for _, r := range roots {
				n, err := trees.ChildCount(ctx, r.ID)
				if err != nil {
					return err
				}
				summaries = append(summaries, formatter.BoxSummary{Record: r, Children: n})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBoxList(summaries, app.now()))
			return nil
		},
	}
}

func newBoxDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a stored node and everything inside it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			trees, err := app.trees()
			if err != nil {
				return err
			}
			id, err := resolveNodeID(ctx, trees, args[0])
			if err != nil {
				return err
			}
			if err := trees.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", formatter.ShortID(id))
			return nil
		},
	}
}
