package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"hbnb/internal/config"
	"hbnb/internal/database"
	"hbnb/internal/logger"
	"hbnb/internal/modules/amenity"
	"hbnb/internal/modules/user"
	"hbnb/internal/pkg/password"
	"hbnb/internal/policy"
	"hbnb/internal/repository"
)

// operator is the principal the seeding commands act as.
var operator = policy.Principal{UserID: "seed", IsAdmin: true}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg *config.Config
		dsn string
		db  *gorm.DB
	)

	root := &cobra.Command{
		Use:          "seed",
		Short:        "Seed the HBnB database (admin, users, amenities)",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			logger.Init("hbnb-seed", cfg.AppEnv, cfg.LogLevel)

			if !cmd.Flags().Changed("database") {
				dsn = cfg.DatabaseURL
			}
			db, err = database.Connect(dsn)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			return repository.AutoMigrate(db)
		},
	}
	root.PersistentFlags().StringVar(&dsn, "database", "", "Database DSN (defaults to DATABASE_URL)")

	users := func() *user.Service {
		return user.NewService(repository.NewUserRepository(db), password.NewHasher(cfg.BcryptCost))
	}

	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Create the administrator from ADMIN_EMAIL / ADMIN_PASSWORD if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, created, err := users().EnsureAdmin(cmd.Context(), user.CreateUserRequest{
				FirstName: cfg.AdminFirstName,
				LastName:  cfg.AdminLastName,
				Email:     cfg.AdminEmail,
				Password:  cfg.AdminPassword,
			})
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (%s)\n", u.Email, u.ID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Admin %s already exists\n", u.Email)
			}
			return nil
		},
	}

	var req user.CreateUserRequest
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := users().Create(cmd.Context(), operator, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", u.Email, u.ID)
			return nil
		},
	}
	userCmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	userCmd.Flags().StringVar(&req.Password, "password", "", "Password (omit to create a user that cannot log in)")
	userCmd.Flags().StringVar(&req.FirstName, "first-name", "", "First name")
	userCmd.Flags().StringVar(&req.LastName, "last-name", "", "Last name")
	userCmd.Flags().BoolVar(&req.IsAdmin, "admin", false, "Grant admin privileges")
	_ = userCmd.MarkFlagRequired("email")
	_ = userCmd.MarkFlagRequired("first-name")
	_ = userCmd.MarkFlagRequired("last-name")

	var amenityNames []string
	amenitiesCmd := &cobra.Command{
		Use:   "amenities",
		Short: "Create amenities by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := amenity.NewService(repository.NewAmenityRepository(db))
			for _, name := range amenityNames {
				a, err := svc.Create(cmd.Context(), operator, amenity.CreateAmenityRequest{Name: name})
				if err != nil {
					return fmt.Errorf("amenity %q: %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created amenity %s (%s)\n", a.Name, a.ID)
			}
			return nil
		},
	}
	amenitiesCmd.Flags().StringSliceVar(&amenityNames, "name", []string{"Wi-Fi", "Air conditioning", "Parking"}, "Amenity names")

	root.AddCommand(adminCmd, userCmd, amenitiesCmd)
	return root
}
