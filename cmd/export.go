package cmd

import (
	"os"
	"os/signal"

	"github.com/Zachkp/portfolio/internal/site"
	"github.com/Zachkp/portfolio/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Render every page to static HTML",
		Long: `Render every route of the site to <dir>/<path>/index.html, plus 404.html and
the static assets, so the site can be hosted without this server.

Example:
  portfolio export
  portfolio export --out public`,
		Args: cobra.NoArgs,
		RunE: a.runExport,
	}
	exportCmd.Flags().String("out", "", "output directory (default from EXPORT_DIR or dist)")
	_ = a.settings.BindPFlag("export_dir", exportCmd.Flags().Lookup("out"))
	return exportCmd
}

func (a *app) runExport(cmd *cobra.Command, args []string) (err error) {
	cfg, err := a.loadConfig()
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	// Release mode keeps the route dump out of batch output.
	mode := gin.ReleaseMode
	if cfg.GinMode != "" {
		mode = cfg.GinMode
	}
	gin.SetMode(mode)

	tmpl, err := view.Templates(cfg.DateFormat)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	_, err = site.Export(ctx, site.NewRouter(a.catalog, tmpl), a.catalog, cfg.ExportDir)
	if err != nil {
		err = errors.Wrapf(err, "failed to export site to %s", cfg.ExportDir)
	}
	return err
}
