package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagUserPassword string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage dashboard users",
}

var userAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Create a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.AddUser(args[0], flagUserPassword)
		if err != nil {
			return err
		}
		fmt.Printf("added user %s (id %d)\n", args[0], id)
		return nil
	},
}

var userPasswdCmd = &cobra.Command{
	Use:   "passwd <username>",
	Short: "Reset a user's password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.SetPassword(args[0], flagUserPassword); err != nil {
			return err
		}
		fmt.Printf("password for %s updated\n", args[0])
		return nil
	},
}

var userCheckCmd = &cobra.Command{
	Use:   "check <username>",
	Short: "Verify a username/password pair",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		ok, err := store.CheckCredentials(args[0], flagUserPassword)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("credentials rejected")
			return nil
		}
		fmt.Println("credentials accepted")
		return nil
	},
}

func init() {
	userCmd.PersistentFlags().StringVar(&flagUserPassword, "password", "", "password for the operation")
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userPasswdCmd)
	userCmd.AddCommand(userCheckCmd)
}
