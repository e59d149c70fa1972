package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dcofeed/internal/campaign"
	"dcofeed/internal/config"
)

const defaultCampaignFile = "campaign.toml"

func newCampaignCommand(ctx *commandContext) *cobra.Command {
	campaignCmd := &cobra.Command{
		Use:   "campaign",
		Short: "Campaign definition utilities",
	}

	campaignCmd.AddCommand(newCampaignInitCommand())
	campaignCmd.AddCommand(newCampaignValidateCommand(ctx))

	return campaignCmd
}

func newCampaignInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write the built-in campaign as an editable TOML file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				target = defaultCampaignFile
			}
			expanded, err := config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve campaign path: %w", err)
			}

			if err := campaign.WriteSample(expanded, overwrite); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample campaign to %s\n", expanded)
			fmt.Fprintln(out, "Edit characters, formats, and texts, then point paths.campaign_file (or --campaign) at it.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the campaign file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing campaign if present")
	return cmd
}

func newCampaignValidateCommand(ctx *commandContext) *cobra.Command {
	var campaignFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a campaign file and report its combination count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := strings.TrimSpace(campaignFile)
			if path == "" {
				path = cfg.Paths.CampaignFile
			}

			c, err := campaign.Load(path)
			if err != nil {
				return fmt.Errorf("campaign invalid: %w", err)
			}
			in := c.Input()

			source := path
			if source == "" {
				source = "built-in"
			}
			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)
			printLines(stdout, renderSectionHeader(c.Name, colorize))
			printLines(stdout, []string{
				renderStatusLine("Source", statusInfo, source, colorize),
				renderStatusLine("Formats", statusInfo, strconv.Itoa(len(in.Formats)), colorize),
				renderStatusLine("Characters", statusInfo, strconv.Itoa(len(in.Characters)), colorize),
				renderStatusLine("Texts", statusInfo, strconv.Itoa(len(in.SecondaryTexts)), colorize),
				renderStatusLine("Combinations", statusOK, strconv.Itoa(in.Combinations()), colorize),
			})
			fmt.Fprintln(stdout, "Campaign valid")
			return nil
		},
	}

	cmd.Flags().StringVar(&campaignFile, "campaign", "", "Campaign file (.toml, .yaml); defaults to paths.campaign_file or the built-in campaign")
	return cmd
}
