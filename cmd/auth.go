package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/faftech/portfolio-admin/pkg/activity"
	"github.com/faftech/portfolio-admin/pkg/api"
	"github.com/faftech/portfolio-admin/pkg/logging"
)

//nolint:gochecknoglobals // Cobra boilerplate
var loginEmail string

//nolint:gochecknoglobals // Cobra boilerplate
var loginPassword string

//nolint:gochecknoglobals // Cobra boilerplate
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the admin token",
	Long: `Exchange admin credentials for a token and store it in the token file.
The stored token is sent with every create, update and delete.

Example:
  portfolio-admin login --email admin@example.com --password secret`,
	Args: cobra.NoArgs,
	RunE: withApp(runLogin),
}

//nolint:gochecknoglobals // Cobra boilerplate
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored admin token",
	Args:  cobra.NoArgs,
	RunE:  withApp(runLogout),
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Admin email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Admin password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}

func runLogin(ctx context.Context, a *app, cmd *cobra.Command, args []string) (err error) {
	raw, err := a.client.Login(ctx, loginEmail, loginPassword)
	if err != nil {
		status := activity.StatusFailed
		if api.IsAuth(err) {
			status = activity.StatusBlocked
		}
		a.record(ctx, activity.Entry{Action: "Failed Login Attempt", Resource: loginEmail, Status: status})
		err = errors.Wrap(err, "login failed")
		return err
	}

	var token string
	token, err = api.TokenFromLogin(raw)
	if err != nil {
		return err
	}

	err = a.session.Set(token)
	if err != nil {
		return err
	}

	a.logger.Debug("token stored", zap.String("token", logging.RedactToken(token)))
	a.record(ctx, activity.Entry{Action: "Logged In", Resource: loginEmail})

	fmt.Fprintf(a.out, "Logged in as %s\n", loginEmail)
	return err
}

func runLogout(ctx context.Context, a *app, cmd *cobra.Command, args []string) (err error) {
	if !a.session.Authenticated() {
		fmt.Fprintln(a.out, "Not logged in")
		return err
	}

	err = a.session.Clear()
	if err != nil {
		return err
	}

	a.record(ctx, activity.Entry{Action: "Logged Out", Resource: "session"})
	fmt.Fprintln(a.out, "Logged out")
	return err
}
