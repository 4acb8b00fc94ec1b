package commands

import (
	"github.com/gunchamalik/wheelhouse/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Ensure the primary and companion packages are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			osID, _ := cmd.Flags().GetString("os")
			pythonVersion, _ := cmd.Flags().GetString("python")
			fromSource, _ := cmd.Flags().GetBool("from-source")
			cacheDir, _ := cmd.Flags().GetString("cache-dir")

			return c.app.Install(cmd.Context(), app.InstallOptions{
				ConfigPath:    configPath,
				OS:            osID,
				PythonVersion: pythonVersion,
				FromSource:    fromSource,
				CacheDir:      cacheDir,
			})
		},
	}
	cmd.Flags().String("os", "", "Platform identifier for the cache key (default: detected)")
	cmd.Flags().String("python", "", "Python version for the cache key (default: from config)")
	cmd.Flags().Bool("from-source", false, "Build the primary package from the upstream head instead of installing the published release")
	cmd.Flags().String("cache-dir", "", "Wheel cache directory (default: from config)")
	return cmd
}
