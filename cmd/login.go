package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/huutaile/portfolio-admin/pkg/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var loginUsername string

//nolint:gochecknoglobals // Cobra boilerplate
var loginPassword string

//nolint:gochecknoglobals // Cobra boilerplate
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Start an admin session",
	Long: `Start an admin session so editing commands become available.

Credentials can be passed as flags or entered interactively. The session is
persisted and survives until 'portfolio-admin logout'.`,
	RunE: runLogin,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "admin username")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "admin password")
}

func runLogin(cmd *cobra.Command, args []string) (err error) {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	username := loginUsername
	password := loginPassword

	// Prompt for anything not passed as a flag
	reader := bufio.NewReader(os.Stdin)
	if username == "" {
		fmt.Print("Username: ")
		username, err = readLine(reader)
		if err != nil {
			return err
		}
	}
	if password == "" {
		fmt.Print("Password: ")
		password, err = readLine(reader)
		if err != nil {
			return err
		}
	}

	ok := s.Login(store.Credentials{
		Username: username,
		Password: password,
	})
	if !ok {
		err = errors.New("invalid credentials")
		return err
	}

	fmt.Println("Logged in. Editing commands are now available.")

	return err
}

func readLine(reader *bufio.Reader) (line string, err error) {
	line, err = reader.ReadString('\n')
	if err != nil {
		err = errors.Wrap(err, "failed to read input")
		return line, err
	}
	line = strings.TrimSpace(line)
	return line, err
}
