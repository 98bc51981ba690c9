package main

import (
	"context"
	"fmt"

	"andes-autoparts/internal/auth"
	"andes-autoparts/internal/config"
	"andes-autoparts/internal/database"
	"andes-autoparts/internal/importer"
	"andes-autoparts/internal/logging"
	"andes-autoparts/internal/models"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "andesctl",
	Short: "andesctl maintains the Andes Auto Parts catalog database",
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Append the parts of a spreadsheet to the catalog",
	Long: "Append the parts of a spreadsheet to the catalog.\n" +
		"Run it while the web server is idle: searches during an import can see a partial table.",
	Args: cobra.NoArgs,
	RunE: runImport,
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage web users",
}

var userAddCmd = &cobra.Command{
	Use:   "add USERNAME PASSWORD",
	Short: "Create a user with a bcrypt-hashed password",
	Args:  cobra.ExactArgs(2),
	RunE:  runUserAdd,
}

var (
	importFile string
	userRole   string
)

func openDB() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logging.Setup(cfg.LogLevel)
	db, err := database.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg, db, err := openDB()
	if err != nil {
		return err
	}
	path := importFile
	if path == "" {
		path = cfg.ImportFile
	}

	n, err := importer.Run(context.Background(), db, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Importación completada: %d productos\n", n)
	return nil
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	_, db, err := openDB()
	if err != nil {
		return err
	}
	user, err := auth.NewService(db).CreateUser(context.Background(), args[0], args[1], models.UserRole(userRole))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created user %s (rol=%s)\n", user.Username, user.Role)
	return nil
}

func main() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "spreadsheet to import (default $IMPORT_FILE)")
	userAddCmd.Flags().StringVarP(&userRole, "role", "r", "vendedor", "role of the new user (admin grants export)")

	userCmd.AddCommand(userAddCmd)
	rootCmd.AddCommand(importCmd, userCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
