package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/seriv/go-xp-dashboard/internal/config"
	"github.com/seriv/go-xp-dashboard/internal/data/session"
	"github.com/seriv/go-xp-dashboard/internal/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginUsername string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store a session token",
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "user", "u", "",
		"Username or email (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	username := loginUsername
	if username == "" {
		fmt.Print("Username or email: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading username: %w", err)
		}
		username = strings.TrimSpace(line)
	}
	if username == "" {
		return fmt.Errorf("username is required")
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	sess, err := session.Signin(cmd.Context(), cfg.SigninURL, username, string(password))
	if err != nil {
		return err
	}

	store := session.NewStore(config.AppDir())
	if err := store.Save(sess); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}

	util.LogInfof("Session stored, expires %s", sess.ExpiresAt.Format("2006-01-02 15:04"))
	fmt.Printf("Logged in as %s (session valid until %s)\n",
		username, sess.ExpiresAt.Format("2006-01-02 15:04"))
	return nil
}
