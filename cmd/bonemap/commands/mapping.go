package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <parent> <target>",
		Short: "Select the parent and target armatures and reset the mapping",
		Long: `Select the parent and target armatures. The mapping is rebuilt with one
entry per parent bone; any previous targets are discarded. Pass "" to
deselect an armature.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.Select(args[0], args[1])
		},
	}
}

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the mapping",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.List()
		},
	}
}

func (c *CLI) newAutoFillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "autofill",
		Short: "Fill unmapped bones with the closest target bone names",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.AutoFill()
		},
	}
}

func (c *CLI) newSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <bone>",
		Short: "Rank target bones by name distance to a bone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			maxDistance, _ := cmd.Flags().GetInt("max-distance")
			return c.app.Suggest(args[0], limit, maxDistance)
		},
	}
	cmd.Flags().IntP("limit", "n", 5, "Number of candidates to show (-1 for all)")
	cmd.Flags().IntP("max-distance", "d", 0, "Hide candidates more than this many edits away (0 for no limit)")

	return cmd
}

func (c *CLI) newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <parent-bone> <target-bone>",
		Short: "Map a parent bone to a target bone",
		Long: `Map a parent bone to a target bone. An empty target bone ("") unmaps the
parent bone.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("type")
			return c.app.Set(args[0], args[1], kind)
		},
	}
	cmd.Flags().StringP("type", "t", "", "Constraint type, e.g. COPY_ROTATION")

	return cmd
}

func (c *CLI) newKindCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "kind <parent-bone> <TYPE>",
		Short:     "Set the constraint type of a mapped bone",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"COPY_TRANSFORMS", "COPY_LOCATION", "COPY_ROTATION", "COPY_SCALE"},
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.SetKind(args[0], args[1])
		},
	}
}

func (c *CLI) newClearListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-list",
		Short: "Unmap every bone and keep the selection",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.ClearList()
		},
	}
}

func (c *CLI) newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Deselect both armatures and empty the mapping",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.ClearAll()
		},
	}
}
