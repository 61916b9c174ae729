package main

import (
	"bufio"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"photo-gallery-backend/internal/client"
)

var loginCmd = &cobra.Command{
	Use:   "login [password]",
	Short: "Authenticate against the gallery access gate",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string
		if len(args) == 1 {
			password = args[0]
		} else {
			fmt.Print("Password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			password = strings.TrimSpace(line)
		}

		resp, err := apiClient().Login(password)
		if err != nil {
			var apiErr *client.APIError
			if errors.As(err, &apiErr) {
				switch apiErr.StatusCode {
				case http.StatusUnauthorized:
					return errors.New("invalid password")
				case http.StatusConflict:
					return errors.New("the server has no access gate; no login needed")
				}
			}
			return err
		}

		if err := saveToken(resp.Token); err != nil {
			return err
		}
		fmt.Printf("Logged in until %s.\n", resp.ExpiresAt.Local().Format(time.RFC1123))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
