package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newContentCmd(a *app) *cobra.Command {
	var check bool

	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Print the site content as YAML",
		Long: `Print every area, tool, skill, achievement, creation and article as YAML.

With --check, print data problems instead (duplicate names that make entries
unreachable, names that cannot be exported, invalid dates) and exit non-zero
if there are any.

Example:
  portfolio content
  portfolio content --check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runContent(cmd, check)
		},
	}
	contentCmd.Flags().BoolVar(&check, "check", false, "report data problems instead of printing content")
	return contentCmd
}

func (a *app) runContent(cmd *cobra.Command, check bool) (err error) {
	out := cmd.OutOrStdout()

	if check {
		problems := a.catalog.Validate()
		for _, p := range problems {
			fmt.Fprintln(out, p)
		}
		if len(problems) > 0 {
			err = errors.Errorf("found %d content problems", len(problems))
			return err
		}
		fmt.Fprintln(out, "content OK")
		return err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	err = enc.Encode(a.catalog)
	if err != nil {
		err = errors.Wrap(err, "failed to encode content")
		return err
	}
	err = enc.Close()
	return err
}
