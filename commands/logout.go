package commands

import (
	"fmt"

	"github.com/seriv/go-xp-dashboard/internal/config"
	"github.com/seriv/go-xp-dashboard/internal/data/session"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Delete the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := setup(); err != nil {
			return err
		}
		store := session.NewStore(config.AppDir())
		if err := store.Delete(); err != nil {
			return err
		}
		fmt.Println("Session removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
