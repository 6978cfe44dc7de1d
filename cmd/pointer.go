package cmd

import (
	"fmt"

	"github.com/bnema/wlcinput/internal/ui"
	"github.com/spf13/cobra"
)

var pointerCmd = &cobra.Command{
	Use:   "pointer",
	Short: "Read or move the pointer",
}

var pointerGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the pointer position",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(false)
		if err != nil {
			return err
		}
		defer closeServices(svc)

		pos := svc.Pointer.Position()
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatPoint(pos))
		return nil
	},
}

var pointerSetCmd = &cobra.Command{
	Use:   "set X Y",
	Short: "Move the pointer to X Y",
	Long: `Move the pointer to the given position. The subsystem may clamp the
position to the screen; the position it reports afterwards is printed.
Use -- before negative coordinates.`,
	Example: `  wlcinput pointer set 640 480
  wlcinput pointer set -- -20 100`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePoint(args)
		if err != nil {
			return err
		}

		svc, err := openServices(false)
		if err != nil {
			return err
		}
		defer closeServices(svc)

		svc.Pointer.SetPosition(pos)
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatPoint(svc.Pointer.Position()))
		return nil
	},
}

func init() {
	pointerCmd.AddCommand(pointerGetCmd)
	pointerCmd.AddCommand(pointerSetCmd)
	rootCmd.AddCommand(pointerCmd)
}
