package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"dcofeed/internal/feed"
	"dcofeed/internal/sink"
)

func newLabelCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "label <reporting-label>...",
		Short:       "Split reporting labels into sequence, character, format, and variant",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := make([]labelJSON, 0, len(args))
			for _, arg := range args {
				parts, err := feed.ParseReportingLabel(arg)
				if err != nil {
					return err
				}
				parsed = append(parsed, labelJSON{
					Label:          arg,
					SequenceID:     parts.SequenceID,
					CharacterID:    parts.CharacterID,
					FormatName:     parts.FormatName,
					SecondaryIndex: parts.SecondaryIndex,
				})
			}

			if asJSON {
				return writeJSON(cmd, parsed)
			}
			return sink.RenderText(cmd.OutOrStdout(), labelTable(parsed))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print parsed labels as JSON")
	return cmd
}

type labelJSON struct {
	Label          string `json:"label"`
	SequenceID     int    `json:"sequence_id"`
	CharacterID    string `json:"character_id"`
	FormatName     string `json:"format_name"`
	SecondaryIndex int    `json:"secondary_index"`
}

func labelTable(labels []labelJSON) feed.Table {
	t := feed.Table{
		Name: "Labels",
		Columns: []feed.Column{
			{Header: "Label"},
			{Header: "Seq"},
			{Header: "Character"},
			{Header: "Format"},
			{Header: "Secondary"},
		},
	}
	for _, l := range labels {
		t.Rows = append(t.Rows, []feed.Cell{
			l.Label,
			l.SequenceID,
			l.CharacterID,
			l.FormatName,
			feed.SecondaryTextKey(l.SecondaryIndex) + " (" + strconv.Itoa(l.SecondaryIndex) + ")",
		})
	}
	return t
}
