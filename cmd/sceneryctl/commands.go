package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/skysort/sceneryctl/pkg/commands"
	"github.com/skysort/sceneryctl/pkg/style"
	"github.com/skysort/sceneryctl/pkg/tui"
	"github.com/skysort/sceneryctl/pkg/types"
)

// runVerb opens a session, dispatches one verb and renders the error
// through the style layer so structured codes stay visible.
func runVerb(cmd *cobra.Command, opts commands.DispatchOptions) (*commands.Result, error) {
	ctx := cmd.Context()

	session, err := commands.NewSession(ctx)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), style.RenderError(err))
		return nil, err
	}

	res, err := commands.Dispatch(ctx, session, opts)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), style.RenderError(err))
		return nil, err
	}
	return res, nil
}

// packNamesCompletion provides shell completion for pack names
func packNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	session, err := commands.NewSession(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	// Filter out already specified packs
	var available []string
	for _, name := range session.Engine.FolderNames() {
		found := false
		for _, arg := range args {
			if arg == name {
				found = true
				break
			}
		}
		if !found {
			available = append(available, name)
		}
	}

	return available, cobra.ShellCompDirectiveNoFileComp
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runVerb(cmd, commands.DispatchOptions{Command: commands.CommandStatus})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.RenderState(res.State))
			fmt.Fprintln(cmd.OutOrStdout(), style.RenderSummary(res.Entries))
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	var (
		category     string
		disabledOnly bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: "order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runVerb(cmd, commands.DispatchOptions{Command: commands.CommandList})
			if err != nil {
				return err
			}

			entries := res.Entries
			if category != "" {
				cat := types.Category(category)
				if !cat.Valid() {
					return fmt.Errorf("unknown category %q", category)
				}
				entries = filterEntries(entries, func(e types.Entry) bool { return e.Category == cat })
			}
			if disabledOnly {
				entries = filterEntries(entries, func(e types.Entry) bool { return !e.Enabled })
			}

			fmt.Fprint(cmd.OutOrStdout(), style.RenderEntryTable(entries))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", MsgFlagCategory)
	cmd.Flags().BoolVar(&disabledOnly, "disabled", false, MsgFlagDisabled)
	return cmd
}

func filterEntries(entries []types.Entry, keep func(types.Entry) bool) []types.Entry {
	out := make([]types.Entry, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func newOnCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "on [packs...]",
		Short:             MsgOnShort,
		Long:              MsgOnLong,
		Example:           MsgExampleOn,
		GroupID:           "order",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: packNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runVerb(cmd, commands.DispatchOptions{
				Command:   commands.CommandOn,
				PackNames: args,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgToggledOn, len(res.Changed))
			return nil
		},
	}
}

func newOffCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "off [packs...]",
		Short:             MsgOffShort,
		GroupID:           "order",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: packNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runVerb(cmd, commands.DispatchOptions{
				Command:   commands.CommandOff,
				PackNames: args,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgToggledOff, len(res.Changed))
			return nil
		},
	}
}

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "move <pack> <position>",
		Short:             MsgMoveShort,
		Example:           MsgExampleMove,
		GroupID:           "order",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: packNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			var position int
			if _, err := fmt.Sscanf(args[1], "%d", &position); err != nil {
				return fmt.Errorf("position must be a number, got %q", args[1])
			}

			res, err := runVerb(cmd, commands.DispatchOptions{
				Command:   commands.CommandMove,
				PackNames: args[:1],
				Position:  position,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgMoved, res.Changed[0])
			return nil
		},
	}
}

func newStepCmd(use, short, long string, command commands.CommandType) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:               use + " <pack>",
		Short:             short,
		Long:              long,
		GroupID:           "order",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: packNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runVerb(cmd, commands.DispatchOptions{
				Command:   command,
				PackNames: args,
				Steps:     steps,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgMoved, res.Changed[0])
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, MsgFlagSteps)
	return cmd
}

func newUpCmd() *cobra.Command {
	return newStepCmd("up", MsgUpShort, MsgUpLong, commands.CommandUp)
}

func newDownCmd() *cobra.Command {
	return newStepCmd("down", MsgDownShort, MsgDownLong, commands.CommandDown)
}

func newCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "category <category> [packs...]",
		Short:             MsgCategoryShort,
		Long:              MsgCategoryLong,
		GroupID:           "order",
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: packNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runVerb(cmd, commands.DispatchOptions{
				Command:   commands.CommandCategory,
				PackNames: args[1:],
				Category:  args[0],
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgRecategorized, len(res.Changed), args[0])
			return nil
		},
	}
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "rm [packs...]",
		Short:             MsgRmShort,
		GroupID:           "order",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: packNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runVerb(cmd, commands.DispatchOptions{
				Command:   commands.CommandRemove,
				PackNames: args,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgRemoved, len(res.Changed))
			return nil
		},
	}
}

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "apply",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runVerb(cmd, commands.DispatchOptions{Command: commands.CommandApply})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			return nil
		},
	}
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "reset",
		Short:   MsgResetShort,
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runVerb(cmd, commands.DispatchOptions{Command: commands.CommandReset})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			return nil
		},
	}
}

func newConflictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "conflicts [pack]",
		Short:             MsgConflictsShort,
		Long:              MsgConflictsLong,
		GroupID:           "order",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: packNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runVerb(cmd, commands.DispatchOptions{
				Command:   commands.CommandConflicts,
				PackNames: args,
			})
			if err != nil {
				return err
			}
			if len(res.Entries) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), MsgNoConflicts)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), style.RenderConflicts(res.Entries))
			return nil
		},
	}
}

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "edit",
		Short:   MsgEditShort,
		GroupID: "order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := commands.NewTUISession(cmd.Context())
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), style.RenderError(err))
				return err
			}

			log.Debug().Int("entries", session.Engine.Len()).Msg("Starting interactive editor")
			return tui.Run(session)
		},
	}
}
