package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func registerCmd(a *app) *cobra.Command {
	var name, email, phone, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.auth.Register(cmd.Context(), name, email, phone, password)
			if err != nil {
				return err
			}
			fmt.Printf("Welcome, %s! Your account id is %s\n", user.Name, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "full name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	var everywhere bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if everywhere {
				return a.auth.LogoutEverywhere(cmd.Context())
			}
			return a.auth.Logout()
		},
	}

	cmd.Flags().BoolVar(&everywhere, "everywhere", false, "also revoke the session on the backend")
	return cmd
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := a.session.CurrentUser()
			if user == nil {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Printf("%s <%s> (id %s)\n", user.Name, user.Email, user.ID)
			if a.creds.IsTokenExpired() {
				fmt.Println("Warning: stored token has expired, run 'meetline login' again")
			}
			return nil
		},
	}
}

func onboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "onboard",
		Short: "Mark the first-run flow as completed",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.creds.SetOnboardingCompleted()
		},
	}
}

func forgotPasswordCmd(a *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset email",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.auth.RequestPasswordReset(cmd.Context(), email); err != nil {
				return err
			}
			fmt.Println("Reset email sent if the account exists")
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	return cmd
}
