package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/amonks/rtodo/internal/prompt"
	internalstrings "github.com/amonks/rtodo/internal/strings"
	"github.com/amonks/rtodo/internal/ui"
	"github.com/amonks/rtodo/todo"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:     "new [title]",
	Aliases: []string{"add"},
	Short:   "Create a todo",
	Long: `Create a todo.

Words after "new" form the title. When no title is given and stdin is a
terminal, rtodo asks for each value that was not passed as a flag. Use
--interactive to ask even when stdin is not a terminal.

Lifespans look like "3d", "2w", "1 month" or "year". Lifecycles are once,
daily, weekly, monthly and yearly.`,
	Args: cobra.ArbitraryArgs,
	RunE: runNew,
}

var (
	newDescription string
	newLifespan    string
	newLifecycle   string
	newInteractive bool
)

func init() {
	rootCmd.AddCommand(newCmd)
	addNewFlagAliases(newCmd)

	newCmd.Flags().StringVarP(&newDescription, "description", "d", "", "Description (use '-' to read from stdin)")
	newCmd.Flags().StringVarP(&newLifespan, "lifespan", "l", "", "How long the todo stays open (default from config, or 1d)")
	newCmd.Flags().StringVarP(&newLifecycle, "lifecycle", "c", "", "Recurrence: once, daily, weekly, monthly, yearly (default from config, or once)")
	newCmd.Flags().BoolVarP(&newInteractive, "interactive", "i", false, "Prompt for values not given as flags")
}

// newTodoInput collects the values for a new todo. Unset fields are prompted
// for in interactive mode and defaulted otherwise.
type newTodoInput struct {
	Title          string
	Description    string
	DescriptionSet bool
	Lifespan       string
	Lifecycle      string
}

func runNew(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	input := newTodoInput{
		Title:          strings.Join(args, " "),
		Description:    newDescription,
		DescriptionSet: cmd.Flags().Changed("description"),
		Lifespan:       newLifespan,
		Lifecycle:      newLifecycle,
	}

	interactive := newInteractive || (internalstrings.IsBlank(input.Title) && prompt.IsInteractive(os.Stdin))
	if interactive && input.Description == "-" {
		return &usageError{msg: "--description - cannot be combined with interactive prompts"}
	}
	if input.DescriptionSet {
		input.Description, err = resolveDescriptionFromStdin(input.Description, cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	defaults, err := newTodoDefaults(a)
	if err != nil {
		return err
	}

	var opts todo.NewOptions
	var title string
	if interactive {
		title, opts, err = promptNewTodo(prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()), input, defaults)
	} else {
		title, opts, err = parseNewTodo(input, defaults)
	}
	if err != nil {
		return err
	}

	now := time.Now()
	item, err := todo.New(title, opts, now)
	if err != nil {
		return err
	}

	var index int
	err = a.update(now, func(s *todo.Store) error {
		var addErr error
		index, addErr = s.Add(item)
		return addErr
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created todo %s: %s\n", ui.FormatIndex(index), item.Title)
	return nil
}

func newTodoDefaults(a *app) (todo.NewOptions, error) {
	lifespan, err := a.cfg.DefaultLifespan()
	if err != nil {
		return todo.NewOptions{}, err
	}
	lifecycle, err := a.cfg.DefaultLifecycle()
	if err != nil {
		return todo.NewOptions{}, err
	}
	return todo.NewOptions{Lifespan: lifespan, Lifecycle: lifecycle}, nil
}

// parseNewTodo resolves input without prompting.
func parseNewTodo(input newTodoInput, defaults todo.NewOptions) (string, todo.NewOptions, error) {
	if internalstrings.IsBlank(input.Title) {
		return "", todo.NewOptions{}, &todo.ValidationError{Err: todo.ErrEmptyTitle, Detail: "pass a title or use --interactive"}
	}

	opts := defaults
	opts.Description = input.Description
	if input.Lifespan != "" {
		lifespan, err := todo.ParseLifespan(input.Lifespan)
		if err != nil {
			return "", todo.NewOptions{}, err
		}
		opts.Lifespan = lifespan
	}
	if input.Lifecycle != "" {
		lifecycle, err := todo.ParseLifecycle(input.Lifecycle)
		if err != nil {
			return "", todo.NewOptions{}, err
		}
		opts.Lifecycle = lifecycle
	}
	return input.Title, opts, nil
}

// promptNewTodo asks for every value missing from input. Values given as
// flags are still validated, but never prompted for.
func promptNewTodo(p *prompt.Prompter, input newTodoInput, defaults todo.NewOptions) (string, todo.NewOptions, error) {
	title := input.Title
	if internalstrings.IsBlank(title) {
		var err error
		title, err = prompt.Ask(p, "Title", "", parseTitle)
		if err != nil {
			return "", todo.NewOptions{}, err
		}
	}

	opts := defaults
	if input.DescriptionSet {
		opts.Description = input.Description
	} else {
		description, err := p.Line("Description (optional)", "")
		if err != nil {
			return "", todo.NewOptions{}, err
		}
		opts.Description = description
	}

	if input.Lifespan != "" {
		lifespan, err := todo.ParseLifespan(input.Lifespan)
		if err != nil {
			return "", todo.NewOptions{}, err
		}
		opts.Lifespan = lifespan
	} else {
		lifespan, err := prompt.Ask(p, "Lifespan", defaults.Lifespan.String(), todo.ParseLifespan)
		if err != nil {
			return "", todo.NewOptions{}, err
		}
		opts.Lifespan = lifespan
	}

	if input.Lifecycle != "" {
		lifecycle, err := todo.ParseLifecycle(input.Lifecycle)
		if err != nil {
			return "", todo.NewOptions{}, err
		}
		opts.Lifecycle = lifecycle
	} else {
		lifecycle, err := prompt.Ask(p, "Lifecycle", strings.ToLower(string(defaults.Lifecycle)), todo.ParseLifecycle)
		if err != nil {
			return "", todo.NewOptions{}, err
		}
		opts.Lifecycle = lifecycle
	}

	return title, opts, nil
}

func parseTitle(value string) (string, error) {
	if err := todo.ValidateTitle(value); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

