package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
)

var clientOpts struct {
	role   string
	id     string
	secret string
	name   string
	email  string
}

func init() { //nolint: gochecknoinits
	flags := createClientCmd.Flags()
	flags.StringVar(&clientOpts.role, "role", services.RoleAdmin, "User role (admin or user)")
	flags.StringVar(&clientOpts.id, "id", "", "Client ID, generated when empty")
	flags.StringVar(&clientOpts.secret, "secret", "", "Client secret, generated when empty")
	flags.StringVar(&clientOpts.name, "name", "", "Client name")
	flags.StringVar(&clientOpts.email, "email", "", "Owner email, defaults to <role>@restaurants.local")

	rootCmd.AddCommand(createClientCmd)
}

var createClientCmd = &cobra.Command{
	Use:   "create-client",
	Short: "Register an OAuth2 client for the client credentials grant",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				log.WithError(err).Error("Failed to close database")
			}
		}()

		ctx := cmd.Context()
		email := clientOpts.email
		if email == "" {
			email = clientOpts.role + "@restaurants.local"
		}
		name := clientOpts.name
		if name == "" {
			name = fmt.Sprintf("Development %s Client", clientOpts.role)
		}

		user, err := services.NewUserService(db).EnsureUser(ctx, email, name, clientOpts.role)
		if err != nil {
			return err
		}

		client, secret, err := services.NewClientService(db).CreateClient(ctx, services.NewClient{
			ID:     clientOpts.id,
			Secret: clientOpts.secret,
			Name:   name,
			Domain: "http://localhost",
			UserID: user.ID,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "OAuth client created for role '%s'\n", user.Role)
		fmt.Fprintf(out, "Client ID: %s\n", client.ID)
		fmt.Fprintf(out, "Client Secret: %s\n", secret)
		fmt.Fprintf(out, "User ID: %d\n", user.ID)
		fmt.Fprintln(out, "\nRequest a token with:")
		fmt.Fprintln(out, "curl -X POST http://localhost:8080/oauth/token \\")
		fmt.Fprintln(out, "  -d 'grant_type=client_credentials' \\")
		fmt.Fprintf(out, "  -d 'client_id=%s' \\\n", client.ID)
		fmt.Fprintf(out, "  -d 'client_secret=%s'\n", secret)
		return nil
	},
}
