package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"photo-gallery-backend/internal/models"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload an image to the gallery",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		// Sniff the actual content; the extension is not trusted.
		mtype, err := mimetype.DetectFile(path)
		if err != nil {
			return err
		}
		if !strings.HasPrefix(mtype.String(), "image/") {
			return fmt.Errorf("%s is not an image (%s)", path, mtype.String())
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		subtype := strings.TrimPrefix(mtype.String(), "image/")
		dataURI := fmt.Sprintf("data:image/%s;base64,%s", subtype, base64.StdEncoding.EncodeToString(data))
		name := filepath.Base(path)
		now := time.Now()

		var photo *models.Photo
		if localDB != "" {
			repo, err := localRepository()
			if err != nil {
				return err
			}
			defer repo.Close()
			photo, err = repo.Create(cmd.Context(), name, dataURI, now)
			if err != nil {
				return err
			}
		} else {
			photo, err = apiClient().UploadPhoto(name, dataURI, now)
			if err != nil {
				return err
			}
		}

		fmt.Printf("Uploaded %s (id %s)\n", photo.Name, photo.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
