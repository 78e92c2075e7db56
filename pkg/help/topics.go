// Package help provides a topic-based help system for the CLI. Guides
// are markdown files embedded in the binary and rendered with glamour
// when stdout is a terminal.
package help

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/skysort/sceneryctl/pkg/errors"
)

//go:embed guides/*.md
var guidesFS embed.FS

// Topic is one embedded guide.
type Topic struct {
	Name    string
	Content string
}

// Topics returns the embedded guides sorted by name.
func Topics() ([]Topic, error) {
	entries, err := fs.ReadDir(guidesFS, "guides")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "reading embedded guides")
	}

	topics := make([]Topic, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		data, err := guidesFS.ReadFile(path.Join("guides", e.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "reading guide %s", e.Name())
		}
		topics = append(topics, Topic{
			Name:    strings.TrimSuffix(e.Name(), ".md"),
			Content: string(data),
		})
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Name < topics[j].Name })
	return topics, nil
}

// Lookup returns the named topic.
func Lookup(name string) (Topic, error) {
	topics, err := Topics()
	if err != nil {
		return Topic{}, err
	}
	for _, t := range topics {
		if t.Name == name {
			return t, nil
		}
	}
	return Topic{}, errors.Newf(errors.ErrNotFound, "no help topic %q", name)
}

// Render formats a topic for the terminal. Markdown goes through
// glamour when stdout is a tty; otherwise the raw text is returned.
func Render(t Topic) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return t.Content
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return t.Content
	}
	out, err := r.Render(t.Content)
	if err != nil {
		return t.Content
	}
	return out
}

// NewTopicsCmd builds the topics command listing and showing guides.
func NewTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics [topic]",
		Short: "Display available documentation topics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				topics, err := Topics()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Available help topics:")
				for _, t := range topics {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", t.Name)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "\nUse \"sceneryctl topics <topic>\" to read one.")
				return nil
			}

			t, err := Lookup(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), Render(t))
			return nil
		},
	}
}
