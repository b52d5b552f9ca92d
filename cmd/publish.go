package cmd

import (
	"errors"
	"fmt"

	"icon-data/core/storage"
	"icon-data/feature/icons"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the combined document to object storage",
	Long: `Uploads icons.json to the configured S3/MinIO bucket, creating the bucket if
it does not exist. With --combine the document is rebuilt first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		applyIconFlags(cmd, &cfg.Icons)

		client, err := storage.NewClient(cfg.Storage)
		if errors.Is(err, storage.ErrNotConfigured) {
			return fmt.Errorf("%w: set STORAGE_ENABLED=true", err)
		}
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		svc := icons.NewService(afero.NewOsFs(), cfg.Icons, logg, client, cfg.Storage)

		if rebuild, _ := cmd.Flags().GetBool("combine"); rebuild {
			report, err := svc.Combine(cmd.Context(), icons.CombineOptions{})
			if err != nil {
				return fmt.Errorf("combine failed: %w", err)
			}
			logReport(logg, report)
		}

		info, err := svc.Publish(cmd.Context())
		if err != nil {
			return fmt.Errorf("publish failed: %w", err)
		}

		logg.Info("Icon data published",
			zap.String("bucket", info.Bucket),
			zap.String("object", info.Key),
			zap.Int64("size", info.Size),
			zap.String("etag", info.ETag),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(publishCmd)

	publishCmd.Flags().String("dir", "", "Icon data directory (overrides ICONS_DIR)")
	publishCmd.Flags().String("output", "", "Combined document to upload (overrides ICONS_OUTPUT)")
	publishCmd.Flags().Bool("combine", false, "Rebuild the document before uploading")
}
