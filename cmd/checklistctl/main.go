package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"frota_checklist/internal/adapter/http/routes"
	"frota_checklist/internal/adapter/persistence/repository"
	"frota_checklist/internal/app"
	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/infrastructure/auth"
	"frota_checklist/internal/infrastructure/config"
	"frota_checklist/internal/infrastructure/database"
	"frota_checklist/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// operatorAccount is the identity used for admin operations run from the CLI.
var operatorAccount = entities.Account{ID: "checklistctl", Name: "checklistctl", Role: entities.UserRoleAdmin}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads and validates the environment.
func loadConfig() (config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newApp wires the configured drivers. The caller must defer Close().
func newApp(ctx context.Context) (*app.Container, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	c, err := app.Build(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}
	return c, nil
}

var rootCmd = &cobra.Command{
	Use:   "checklistctl",
	Short: "Operate the fleet checklist service",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		c, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer c.Close()

		registryDone := make(chan struct{})
		go func() {
			c.Registry.Run(ctx)
			close(registryDone)
		}()

		err = routes.Run(ctx, c)
		stop()
		<-registryDone
		return err
	},
}

// tables command
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage the storage schema",
}

var tablesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create missing tables for the configured storage driver",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		switch cfg.StorageDriver {
		case config.StorageDynamoDB:
			created, err := repository.EnsureTables(cmd.Context(), database.ConnectDynamoDB(cfg), repository.TableNames{
				Checklists: cfg.ChecklistsTable,
				Suppliers:  cfg.SuppliersTable,
				Vehicles:   cfg.VehiclesTable,
				Users:      cfg.UsersTable,
				Counters:   cfg.CountersTable,
			})
			if err != nil {
				return fmt.Errorf("creating tables: %w", err)
			}
			fmt.Printf("Created %d table(s)\n", len(created))
			for _, name := range created {
				fmt.Printf("  %s\n", name)
			}
		case config.StoragePostgres:
			db, err := database.ConnectPostgres(cfg.PostgresDSN)
			if err != nil {
				return err
			}
			if err := repository.AutoMigrate(db); err != nil {
				return fmt.Errorf("migrating: %w", err)
			}
			fmt.Println("Schema migrated")
		default:
			fmt.Printf("Nothing to create for storage driver %q\n", cfg.StorageDriver)
		}
		return nil
	},
}

// checklist command
var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Inspect and manage checklists",
}

var checklistExportCmd = &cobra.Command{
	Use:   "export-pdf <checklist-id>",
	Short: "Export a checklist as PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		c, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		file, err := c.Reports.Export(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("exporting: %w", err)
		}
		if out == "" {
			out = file.Filename
		} else if info, err := os.Stat(out); err == nil && info.IsDir() {
			out = filepath.Join(out, file.Filename)
		}
		if err := os.WriteFile(out, file.Content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Printf("Wrote %s (%d bytes)\n", out, len(file.Content))
		return nil
	},
}

var checklistDeleteCmd = &cobra.Command{
	Use:   "delete <checklist-id>",
	Short: "Delete a checklist in any status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		ctx := usecase.ContextWithAccount(cmd.Context(), operatorAccount)
		if err := c.Checklists.Delete(ctx, args[0]); err != nil {
			return fmt.Errorf("deleting: %w", err)
		}
		fmt.Printf("Deleted checklist %s\n", args[0])
		return nil
	},
}

var checklistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List checklists, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")

		c, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		list, err := c.Checklists.List(cmd.Context(), entities.ChecklistFilter{Status: entities.ChecklistStatus(status)})
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No checklists found.")
			return nil
		}
		now := time.Now()
		for _, cl := range list {
			plate := "-"
			if cl.Vehicle != nil {
				plate = cl.Vehicle.Plate
			}
			fmt.Printf("%-13s %-12s %-8s %3dd  %s\n", cl.SeqLabel(), cl.Status, plate, cl.DaysOpen(now), cl.ID)
		}
		return nil
	},
}

// token command
var tokenCmd = &cobra.Command{
	Use:   "issue-token <account-id>",
	Short: "Issue a session token signed with AUTH_JWT_SECRET (local development)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")
		role, _ := cmd.Flags().GetString("role")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		verifier, err := auth.NewJWTVerifier(config.Load().AuthJWTSecret)
		if err != nil {
			return err
		}
		token, err := verifier.Issue(entities.Account{ID: args[0], Email: email, Name: name, Role: entities.UserRole(role)}, ttl)
		if err != nil {
			return fmt.Errorf("issuing token: %w", err)
		}
		fmt.Println(token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	tablesCmd.AddCommand(tablesCreateCmd)
	rootCmd.AddCommand(tablesCmd)

	checklistExportCmd.Flags().StringP("out", "o", "", "output file or directory (default: the report file name)")
	checklistListCmd.Flags().String("status", "", "filter by status (em_andamento, rascunho, finalizado, cancelado)")
	checklistCmd.AddCommand(checklistExportCmd)
	checklistCmd.AddCommand(checklistDeleteCmd)
	checklistCmd.AddCommand(checklistListCmd)
	rootCmd.AddCommand(checklistCmd)

	tokenCmd.Flags().String("email", "", "account email")
	tokenCmd.Flags().String("name", "", "account display name")
	tokenCmd.Flags().String("role", string(entities.UserRoleUser), "role claim (admin or user)")
	tokenCmd.Flags().Duration("ttl", 12*time.Hour, "token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
