package user

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/darasa-app/darasa/internal/infrastructure/auth"
	"github.com/darasa-app/darasa/internal/infrastructure/config"
	"github.com/darasa-app/darasa/internal/infrastructure/database"
	"github.com/darasa-app/darasa/internal/infrastructure/persistence/models"
	"github.com/darasa-app/darasa/internal/shared/authorization"
	"github.com/darasa-app/darasa/internal/shared/id"
	"github.com/darasa-app/darasa/internal/shared/logger"
)

var (
	env         string
	email       string
	password    string
	displayName string
	role        string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User administration tools",
		Long:  `Manage platform users from the command line, e.g. seeding the initial admin account.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Long:  `Create a user with a bcrypt-hashed password. Intended for seeding admin accounts.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	cmd.Flags().StringVar(&displayName, "name", "", "Display name")
	cmd.Flags().StringVar(&role, "role", string(authorization.RoleStudent), "Role (student, parent, admin)")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	user, err := CreateUser(database.Get(), hasher, email, password, displayName, authorization.UserRole(role))
	if err != nil {
		return err
	}

	logger.Info("user created", "sid", user.SID, "email", user.Email, "role", user.Role)
	fmt.Printf("User '%s' created with SID %s\n", user.Email, user.SID)
	return nil
}

// CreateUser hashes the password and persists a new user record.
func CreateUser(db *gorm.DB, hasher *auth.BcryptPasswordHasher, email, password, displayName string, role authorization.UserRole) (*models.UserModel, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.UserModel{
		SID:          id.NewUserSID(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
		Role:         role.String(),
	}

	if err := db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
