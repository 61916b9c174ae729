package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"photo-gallery-backend/internal/models"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List photos, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var list []models.Photo

		if localDB != "" {
			repo, err := localRepository()
			if err != nil {
				return err
			}
			defer repo.Close()
			list, err = repo.List(cmd.Context())
			if err != nil {
				return err
			}
		} else {
			var err error
			list, err = apiClient().ListPhotos()
			if err != nil {
				return err
			}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tUPLOADED")
		for _, p := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, p.UploadedAt.Local().Format(time.RFC3339))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
