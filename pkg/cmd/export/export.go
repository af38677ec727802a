package export

import (
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	exportpkg "github.com/Paintersrp/focusnest/internal/export"
	"github.com/Paintersrp/focusnest/internal/pathutil"
	"github.com/Paintersrp/focusnest/internal/state"
	cmdpkg "github.com/Paintersrp/focusnest/pkg/cmd"
)

// Now is the export timestamp source. It is replaced in tests.
var Now = time.Now

func NewCmdExport(s *state.State) *cobra.Command {
	var out, endpoint string
	var toS3 bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON snapshot of every note and the link graph.",
		Long: heredoc.Doc(`
			Exports all notes together with the graph nodes and links as one
			JSON document. By default the document is written to stdout.

			--out writes to a file, or into a directory using a timestamped
			name. --s3 uploads to the bucket configured under export.bucket.
			Credentials come from the usual AWS environment variables or the
			configured profile.

			Examples:
			  focusnest export > notes.json
			  focusnest export --out ~/backups
			  focusnest export --s3
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmdpkg.Connect(cmd, s); err != nil {
				return err
			}

			ctx := cmdpkg.Context(cmd)
			notes, err := s.Notes.List(ctx, 0, 0)
			if err != nil {
				return err
			}
			data, err := s.Index.Graph(ctx)
			if err != nil {
				return err
			}
			snap := exportpkg.New(notes, data, Now())

			switch {
			case toS3:
				cfg := s.Config.Export
				target, err := exportpkg.NewS3Target(ctx, exportpkg.S3Options{
					Bucket:          cfg.Bucket,
					Prefix:          cfg.Prefix,
					Region:          cfg.Region,
					Profile:         cfg.Profile,
					Endpoint:        endpoint,
					AccessKeyID:     os.Getenv("FOCUSNEST_AWS_ACCESS_KEY_ID"),
					SecretAccessKey: os.Getenv("FOCUSNEST_AWS_SECRET_ACCESS_KEY"),
				})
				if err != nil {
					return err
				}
				loc, err := target.Put(ctx, snap)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %d notes to %s\n", len(snap.Notes), loc)
			case out != "":
				dest, err := exportpkg.WriteFile(pathutil.ExpandHome(out, s.Home), snap)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d notes to %s\n", len(snap.Notes), dest)
			default:
				return snap.Encode(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "File or directory to write the snapshot to.")
	cmd.Flags().BoolVar(&toS3, "s3", false, "Upload the snapshot to the configured S3 bucket.")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Custom S3 endpoint, e.g. for MinIO.")
	cmd.MarkFlagsMutuallyExclusive("out", "s3")
	return cmd
}
