package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"photo-gallery-backend/internal/models"
	"photo-gallery-backend/internal/photos"
)

var downloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Save a photo's bytes to disk",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		out, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		photo, err := findPhoto(cmd.Context(), id)
		if err != nil {
			return err
		}

		var data []byte
		if strings.HasPrefix(photo.URL, "data:") {
			img, err := photos.ParseDataURI(photo.URL)
			if err != nil {
				return err
			}
			data = img.Bytes
		} else {
			resp, err := http.Get(photo.URL)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("failed to fetch %s: %s", photo.URL, resp.Status)
			}
			data, err = io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
		}

		if out == "" {
			out = photo.Name
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}

		fmt.Printf("Saved %s (%d bytes)\n", out, len(data))
		return nil
	},
}

func findPhoto(ctx context.Context, id string) (*models.Photo, error) {
	var list []models.Photo
	var err error

	if localDB != "" {
		repo, rerr := localRepository()
		if rerr != nil {
			return nil, rerr
		}
		defer repo.Close()
		list, err = repo.List(ctx)
	} else {
		list, err = apiClient().ListPhotos()
	}
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("no photo with id %s", id)
}

func init() {
	downloadCmd.Flags().StringP("output", "o", "", "output file (defaults to the photo's name)")
	rootCmd.AddCommand(downloadCmd)
}
