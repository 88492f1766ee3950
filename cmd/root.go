package cmd

import (
	"log"
	"os"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by one command tree: the catalog it serves and
// the settings its flags bind into.
type app struct {
	catalog    *content.Catalog
	settings   *viper.Viper
	configFile string
}

// Execute runs the command tree against cat, which must not change
// afterwards.
func Execute(cat *content.Catalog) {
	err := newRootCmd(cat).Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cat *content.Catalog) *cobra.Command {
	a := &app{catalog: cat, settings: config.New()}

	rootCmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Personal portfolio website",
		Long: `portfolio serves a personal portfolio: skills, achievements, creations,
articles and contact links.

Run without a subcommand to start the web server.

Configuration comes from the environment (PORT, GIN_MODE, DATE_FORMAT,
EXPORT_DIR), an optional .env file, or a YAML file given with --config.`,
		SilenceUsage: true,
		RunE:         a.runServe,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML config file")
	flags.String("date-format", config.DefaultDateFormat, "date layout: Y-M-D, D-M-Y, Y/M/D, D/M/Y, Y.M.D or D.M.Y")
	_ = a.settings.BindPFlag("date_format", flags.Lookup("date-format"))
	flags.String("port", config.DefaultPort, "port to listen on")
	_ = a.settings.BindPFlag("port", flags.Lookup("port"))

	rootCmd.AddCommand(
		newServeCmd(a),
		newExportCmd(a),
		newContentCmd(a),
	)
	return rootCmd
}

// loadConfig resolves settings and reports catalog problems once per run.
func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.settings, a.configFile)
	if err != nil {
		return nil, err
	}
	for _, p := range a.catalog.Validate() {
		log.Printf("Warning: %s", p)
	}
	return cfg, nil
}
