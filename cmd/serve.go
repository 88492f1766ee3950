package cmd

import (
	"log"

	"github.com/Zachkp/portfolio/internal/site"
	"github.com/Zachkp/portfolio/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long: `Start the web server on PORT (default 8080).

Example:
  portfolio serve
  PORT=3000 portfolio serve
  portfolio serve --port 3000 --date-format Y-M-D`,
		Args: cobra.NoArgs,
		RunE: a.runServe,
	}
}

func (a *app) runServe(cmd *cobra.Command, args []string) (err error) {
	cfg, err := a.loadConfig()
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	tmpl, err := view.Templates(cfg.DateFormat)
	if err != nil {
		return err
	}

	r := site.NewRouter(a.catalog, tmpl)

	log.Printf("Serving %s on %s", a.catalog.Profile.Name, cfg.Addr())
	err = r.Run(cfg.Addr())
	if err != nil {
		err = errors.Wrap(err, "server stopped")
	}
	return err
}
