package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"dcofeed/internal/config"
	"dcofeed/internal/feed"
	"dcofeed/internal/generator"
	"dcofeed/internal/sink"
)

var previewFormats = []string{
	config.FormatText,
	config.FormatMarkdown,
	config.FormatCSV,
	config.FormatHTML,
	config.FormatJSON,
}

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var campaignFile string
	var tableFlag string
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the campaign feed to stdout without writing an artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			format := config.NormalizeFormat(formatFlag)
			if !slices.Contains(previewFormats, format) {
				return fmt.Errorf("preview format %q is not supported (want one of %s)", formatFlag, strings.Join(previewFormats, ", "))
			}

			path := strings.TrimSpace(campaignFile)
			if path == "" {
				path = cfg.Paths.CampaignFile
			}
			c, f, err := generator.LoadFeed(path)
			if err != nil {
				return err
			}

			table := feed.TableKey(strings.ToLower(strings.TrimSpace(tableFlag)))
			s, err := sink.For(format, sink.Options{Table: table})
			if err != nil {
				return err
			}
			renderer, ok := s.(sink.Renderer)
			if !ok {
				return fmt.Errorf("%w: %s cannot render to stdout", sink.ErrUnsupportedFormat, format)
			}

			stdout := cmd.OutOrStdout()
			if format == config.FormatText {
				printLines(stdout, feedSummaryLines(c.Name, f, shouldColorize(stdout)))
				fmt.Fprintln(stdout)
			}

			if table != "" && format != config.FormatCSV {
				tr, ok := s.(sink.TableRenderer)
				if !ok {
					return fmt.Errorf("--table is not supported with %s previews", format)
				}
				t, err := feed.TableByKey(f, table)
				if err != nil {
					return err
				}
				return tr.RenderTable(stdout, t)
			}
			return renderer.Render(stdout, f)
		},
	}

	cmd.Flags().StringVar(&campaignFile, "campaign", "", "Campaign file (.toml, .yaml); defaults to paths.campaign_file or the built-in campaign")
	cmd.Flags().StringVar(&tableFlag, "table", "", "Render a single table (feed, texts, characters, formats)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", config.FormatText, "Preview format (text, markdown, csv, html, json)")
	return cmd
}
