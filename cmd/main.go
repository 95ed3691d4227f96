package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"prenatal-care-api/cmd/bootstrap"
	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/domain/entity"
	"prenatal-care-api/internal/infrastructure/database"
	"prenatal-care-api/pkg/validator"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "prenatal-api",
		Short:        "Prenatal care records API",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(createAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			withMigrate, _ := cmd.Flags().GetBool("migrate")
			if withMigrate {
				if err := runMigrations(func(m *database.Migrator) error { return m.Up() }); err != nil {
					return err
				}
			}

			app, err := bootstrap.New()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx)
		},
	}
	cmd.Flags().Bool("migrate", false, "apply pending migrations before serving")
	return cmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(func(m *database.Migrator) error { return m.Up() })
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			return runMigrations(func(m *database.Migrator) error { return m.Down(steps) })
		},
	}
	downCmd.Flags().Int("steps", 1, "number of migrations to roll back")

	cmd.AddCommand(upCmd, downCmd)
	return cmd
}

func runMigrations(run func(m *database.Migrator) error) error {
	cfg, log, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	migrator, err := database.NewMigrator(cfg.DB, log)
	if err != nil {
		return err
	}
	defer migrator.Close()

	return run(migrator)
}

func createAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			name, _ := cmd.Flags().GetString("name")

			req := &dto.CreateStaffRequest{
				Email:    email,
				Password: password,
				FullName: name,
				Role:     entity.RoleAdmin,
			}
			v := validator.NewValidator()
			if err := v.Validate(req); err != nil {
				return fmt.Errorf("invalid admin account: %v", v.FormatValidationErrors(err))
			}

			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			defer app.Close()

			user, err := app.AuthUsecase.CreateStaff(cmd.Context(), nil, req)
			if err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}
	cmd.Flags().String("email", "", "admin email")
	cmd.Flags().String("password", "", "admin password")
	cmd.Flags().String("name", "Administrator", "admin full name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
