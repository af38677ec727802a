package noteEdit

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/note"
	"github.com/Paintersrp/focusnest/internal/state"
	cmdpkg "github.com/Paintersrp/focusnest/pkg/cmd"
	"github.com/Paintersrp/focusnest/pkg/shared/view"
)

// Editor opens path for interactive editing. It is replaced in tests.
var Editor = func(cmd *cobra.Command, path string) error {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}

	fields := strings.Fields(editor)
	c := exec.Command(fields[0], append(fields[1:], path)...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

func NewCmdNoteEdit(s *state.State) *cobra.Command {
	var title, content string
	var appendText string

	cmd := &cobra.Command{
		Use:     "edit [id|title]",
		Aliases: []string{"e", "update"},
		Short:   "Edit a note's title or content.",
		Long: heredoc.Doc(`
			Updates a note. With --title or --content the values are applied
			directly; otherwise the content is opened in $VISUAL or $EDITOR.
			Outgoing links are recomputed from the new content.

			Examples:
			  focusnest note edit 3
			  focusnest note edit "Graph Theory" --title "Graph Theory Basics"
			  focusnest note edit 3 --content "Now links to [[Trees]]"
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(cmd, s, args[0])
			if err != nil {
				return err
			}

			newTitle, newContent := n.Title, n.Content
			if cmd.Flags().Changed("title") {
				newTitle = title
			}
			if cmd.Flags().Changed("content") {
				newContent = content
			}
			if appendText != "" {
				newContent = strings.TrimRight(newContent, "\n") + "\n" + appendText
			}

			if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("content") && appendText == "" {
				newContent, err = editContent(cmd, n)
				if err != nil {
					return err
				}
			}

			updated, err := s.Notes.Update(cmdpkg.Context(cmd), n.ID, newTitle, newContent)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Updated "+view.NoteLine(updated))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title.")
	cmd.Flags().StringVarP(&content, "content", "c", "", "Replace the content.")
	cmd.Flags().StringVarP(&appendText, "append", "a", "", "Append a line to the content.")
	return cmd
}

func editContent(cmd *cobra.Command, n note.Note) (string, error) {
	dir, err := os.MkdirTemp("", "focusnest-edit-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, fmt.Sprintf("note-%d.md", n.ID))
	if err := os.WriteFile(path, []byte(n.Content), 0o600); err != nil {
		return "", err
	}

	if err := Editor(cmd, path); err != nil {
		return "", fmt.Errorf("run editor: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(data) == 0 && n.Content != "" {
		return "", errors.New("edit aborted: the file was emptied")
	}
	return string(data), nil
}
