package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	_ "product-catalog-backend/docs" // This is needed for swag
)

//	@title			Product Catalog API
//	@version		1.0
//	@description	Multi-tenant catalog of products, environments, tenants and components, with the deployment, subscription and activation records linking them.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:5002
//	@BasePath	/api

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	rootCmd = &cobra.Command{
		Use:   "catalog-server",
		Short: "Product catalog backend",
		Long:  "Serves the product, environment, tenant and component catalog over REST.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate()
		},
	}

	seedFile string
	seedCmd  = &cobra.Command{
		Use:   "seed",
		Short: "Load the default rows and an optional YAML catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed(cmd.Context(), seedFile)
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("catalog-server version %s\n", version)
		},
	}
)

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML catalog to load (defaults to SEED_FILE)")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, versionCmd)
}

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
