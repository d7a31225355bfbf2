package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/parcel/internal/demo"
	"github.com/alexanderramin/parcel/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services used by CLI commands.
type App struct {
	// Trees is used directly when set; otherwise OpenTrees is called once on
	// first use so that commands which never touch storage never open it.
	Trees     service.TreeService
	OpenTrees func() (service.TreeService, error)

	IsInteractive func() bool
	Now           func() time.Time
}

func (a *App) trees() (service.TreeService, error) {
	if a.Trees != nil {
		return a.Trees, nil
	}
	if a.OpenTrees == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	svc, err := a.OpenTrees()
	if err != nil {
		return nil, err
	}
	a.Trees = svc
	return svc, nil
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "parcel" command and registers all
// subcommands against the provided App. Run bare, it prints the sample parcel.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "parcel",
		Short:         "Pack items into nested boxes and describe them",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), demo.Build().Describe())
			return err
		},
	}

	root.AddCommand(
		newDemoCmd(app),
		newBoxCmd(app),
		newImportCmd(app),
	)

	return root
}
