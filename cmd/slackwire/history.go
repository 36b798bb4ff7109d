package main

import (
	"fmt"
	"text/tabwriter"

	"slackwire/internal/history"

	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent webhook deliveries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfigOrDefaults()
			if !cfg.History.Enabled {
				return fmt.Errorf("history is disabled in %s", resolveConfigPath())
			}

			store, err := history.NewStore(cfg.History.DBPath, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			deliveries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(deliveries) == 0 {
				fmt.Println("no deliveries recorded")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tSTATUS\tCHANNEL\tATTACH\tTEXT")
			for _, d := range deliveries {
				text := d.Text
				if len(text) > 48 {
					text = text[:45] + "..."
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					d.CreatedAt.Format("2006-01-02 15:04:05"), d.Status, d.Channel, d.Attachments, text)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of deliveries to show")

	return cmd
}
