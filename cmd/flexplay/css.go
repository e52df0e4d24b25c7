package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/flexplay/internal/playground"
	"github.com/alexisbeaulieu97/flexplay/pkg/diff"
	flexerrors "github.com/alexisbeaulieu97/flexplay/pkg/errors"
)

type cssOptions struct {
	Sets   []string
	Items  int
	Select int
	Diff   bool
}

func newCSSCmd(root *rootFlags) *cobra.Command {
	opts := cssOptions{Select: -1}

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the stylesheet for the starting state",
		Long: `Print the projected container and item rules as CSS.

Properties can be overridden with --set, using camelCase, kebab-case or
snake_case names. Prefix a name with "container." or "item." to pick the
scope explicitly:

  flexplay css --set flex-direction=column --set item.flex-grow=1 --select 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(root)
			if err != nil {
				return err
			}
			defer app.Close() //nolint:errcheck

			var extra []playground.Option
			if cmd.Flags().Changed("items") {
				extra = append(extra, playground.WithItemCount(opts.Items))
			}
			if opts.Select >= 0 {
				extra = append(extra, playground.WithSelectedItem(opts.Select))
			}
			session := app.NewSession(extra...)

			for _, raw := range opts.Sets {
				if err := applySet(session, raw); err != nil {
					return err
				}
			}

			out := playground.RenderCSS(session.Project())
			if opts.Diff {
				out = diffFromDefaults(session, out)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringArrayVar(&opts.Sets, "set", nil, "Override a property, as name=value (repeatable)")
	cmd.Flags().IntVar(&opts.Items, "items", playground.DefaultItemCount, "Number of items (1-12)")
	cmd.Flags().IntVar(&opts.Select, "select", -1, "Index of the item that receives the item properties")
	cmd.Flags().BoolVar(&opts.Diff, "diff", false, "Print a unified diff against the default stylesheet instead")

	return cmd
}

// applySet parses one name=value override and writes it to the session.
// Unscoped names are looked up among container fields first.
func applySet(session *playground.Session, raw string) error {
	name, value, ok := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("invalid --set %q: expected name=value", raw)
	}
	value = strings.TrimSpace(value)

	scope := ""
	if s, rest, found := strings.Cut(name, "."); found {
		scope, name = strings.ToLower(s), rest
	}

	switch scope {
	case "", "container":
		if field, ok := playground.ParseContainerField(name); ok {
			session.SetContainerField(field, value)
			return nil
		}
		if scope == "container" {
			return flexerrors.NewUnknownFieldError(scope, name)
		}
		fallthrough
	case "item":
		if field, ok := playground.ParseItemField(name); ok {
			session.SetItemField(field, value)
			return nil
		}
		return flexerrors.NewUnknownFieldError(scope, name)
	default:
		return fmt.Errorf("invalid --set %q: unknown scope %q", raw, scope)
	}
}

// diffFromDefaults compares css with the stylesheet of an untouched session
// holding the same number of items.
func diffFromDefaults(session *playground.Session, css string) string {
	baseline := playground.Project(
		playground.DefaultContainerProperties(),
		playground.DefaultItemProperties(),
		playground.NewSelection(),
		session.ItemCount(),
	)

	result := diff.Lines(playground.RenderCSS(baseline), css, "defaults.css", "current.css")
	if !result.Changed() {
		return "/* no changes from defaults */\n"
	}
	added, removed := result.Stat()
	return result.Unified() + fmt.Sprintf("/* %s, %s */\n",
		plural(added, "addition"), plural(removed, "deletion"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
