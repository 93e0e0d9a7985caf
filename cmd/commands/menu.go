package commands

// Interactive report menu, also the default action of the root command

import (
	"github.com/spf13/cobra"

	"sales-report/internal/features/menu"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive report menu",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	return menu.New(svc, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
}
