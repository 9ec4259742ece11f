package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

func runTUI(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	items, err := app.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	app.silenceLogs()
	if _, err := tui.Run(ctx, app.store, items); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add an item to the end of the list (text can be multiple words)",
		Args:  minArgs(1, "todolist add <text...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			items, err := app.store.Load(ctx)
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			out, err := app.store.Add(ctx, items, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if len(out) == len(items) {
				return usagef("add: empty text")
			}
			ui.OK(cmd.OutOrStdout(), "added "+out[len(out)-1].ID)
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the list",
		Args:    exactArgs(0, "todolist ls [--plain]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.store.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			if plain {
				fmt.Fprint(cmd.OutOrStdout(), ui.Plain(items))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(ui.ListLines(items)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "one id<TAB>content line per item")
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove every item with the given id",
		Args:  exactArgs(1, "todolist rm <id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			items, err := app.store.Load(ctx)
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			out, err := app.store.Remove(ctx, items, args[0])
			if err != nil {
				return err
			}
			if len(out) == len(items) {
				ui.Hint(cmd.OutOrStdout(), "no item with id "+args[0])
				return nil
			}
			ui.OK(cmd.OutOrStdout(), "removed "+args[0])
			return nil
		},
	}
}

func newMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <from> <to>",
		Short: "Move the item at position <from> to position <to> (1-based)",
		Args:  exactArgs(2, "todolist mv <from> <to>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			items, err := app.store.Load(ctx)
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			pos := make([]int, 2)
			for i, a := range args {
				n, err := strconv.Atoi(a)
				if err != nil {
					return usagef("mv: not a number: %s", a)
				}
				if n < 1 || n > len(items) {
					return usagef("position out of range: have %d, got %d", len(items), n)
				}
				pos[i] = n - 1
			}
			if _, err := app.store.Reorder(ctx, items, pos[0], pos[1]); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("moved %d → %d", pos[0]+1, pos[1]+1))
			return nil
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text...>",
		Short: "Replace the text of an item",
		Args:  minArgs(2, "todolist edit <id> <text...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, text := args[0], strings.Join(args[1:], " ")
			if strings.TrimSpace(text) == "" {
				return usagef("edit: empty text")
			}
			items, err := app.store.Load(ctx)
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			if items.Index(id) < 0 {
				ui.Hint(cmd.ErrOrStderr(), "Hint: run `todolist ls` to see valid ids")
				return fmt.Errorf("edit: no item with id %s", id)
			}
			if _, err := app.store.Edit(ctx, items, id, text); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "edited "+id)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  exactArgs(0, "todolist version"),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "todolist "+Version)
		},
	}
}
