package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"photo-gallery-backend/internal/client"
	"photo-gallery-backend/internal/photos"
)

var (
	serverURL string
	localDB   string
)

var rootCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Manage a password-gated photo gallery",
	Long: strings.TrimSpace(`
Upload, list, download and delete photos in a gallery, either through a
gallery server or directly against a local gallery database file.
	`),
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "gallery server base URL")
	rootCmd.PersistentFlags().StringVar(&localDB, "local", "", "path to a local gallery database (skips the server entirely)")
}

func tokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gallery", "token"), nil
}

// savedToken returns the persisted session token, or "" when the user never
// logged in. An empty token is fine against a server with the gate disabled.
func savedToken() string {
	path, err := tokenPath()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func saveToken(token string) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token+"\n"), 0o600)
}

func apiClient() *client.Client {
	return client.New(serverURL, savedToken())
}

func localRepository() (*photos.LocalRepository, error) {
	return photos.NewLocalRepository(localDB)
}
