package main

import (
	"github.com/spf13/cobra"

	"dcofeed/internal/generator"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var opts generator.Options
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Enumerate the campaign feed and write the artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			opts.Config = cfg
			opts.Logger = logger

			res, err := generator.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, generateJSON{
					RunID:       res.RunID,
					Campaign:    res.Campaign,
					Format:      res.Format,
					Path:        res.Path,
					Rows:        res.Rows,
					Defaults:    res.Defaults,
					Fingerprint: res.Fingerprint,
				})
			}
			stdout := cmd.OutOrStdout()
			printLines(stdout, generateSummaryLines(res, shouldColorize(stdout)))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.CampaignFile, "campaign", "", "Campaign file (.toml, .yaml); defaults to paths.campaign_file or the built-in campaign")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format (xlsx, sqlite, json, csv, markdown, html, text)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Artifact path or directory")
	cmd.Flags().StringVar(&opts.Table, "table", "", "Table for single-table formats (feed, texts, characters, formats)")
	cmd.Flags().BoolVar(&opts.Overwrite, "overwrite", false, "Replace an existing artifact")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the run summary as JSON")
	return cmd
}

type generateJSON struct {
	RunID       string `json:"run_id"`
	Campaign    string `json:"campaign"`
	Format      string `json:"format"`
	Path        string `json:"path"`
	Rows        int    `json:"rows"`
	Defaults    int    `json:"defaults"`
	Fingerprint string `json:"fingerprint"`
}
