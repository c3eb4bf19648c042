package system

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nobatclinic/nobat_backend/config"
	"github.com/nobatclinic/nobat_backend/pkg/authorize"
	"github.com/nobatclinic/nobat_backend/pkg/database"
	pasetotoken "github.com/nobatclinic/nobat_backend/pkg/paseto"
)

// NewTokenCommand issues PASETO access tokens for local development and
// operational tooling. With --grant it also writes the matching Casbin
// role assignment so the token passes RBAC checks.
func NewTokenCommand() *cobra.Command {
	var (
		userIDStr string
		role      string
		grant     bool
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			userID := uuid.New()
			if userIDStr != "" {
				userID, err = uuid.Parse(userIDStr)
				if err != nil {
					return fmt.Errorf("invalid user id: %w", err)
				}
			}

			switch role {
			case "admin", "patient", "superadmin":
			default:
				return fmt.Errorf("unknown role %q, expected admin, patient or superadmin", role)
			}

			mgr, err := pasetotoken.NewPasetoManager(cfg)
			if err != nil {
				return fmt.Errorf("failed to create token manager: %w", err)
			}

			token, err := mgr.IssueAccess(userID, role, nil)
			if err != nil {
				return fmt.Errorf("failed to issue token: %w", err)
			}

			if grant {
				dsn := database.NewDSN(cfg.CasbinDatabase)
				enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, dsn)
				if err != nil {
					return fmt.Errorf("failed to create enforcer: %w", err)
				}
				defer cleanup(context.Background())

				auth, err := authorize.NewAuthorization(enforcer)
				if err != nil {
					return fmt.Errorf("failed to create authorization: %w", err)
				}

				ctx := context.Background()
				switch role {
				case "superadmin":
					err = authorize.AssignSystemRole(ctx, auth, userID.String(), authorize.RoleSuperAdmin)
				default:
					err = authorize.AssignClinicRole(ctx, auth, userID.String(), authorize.TokenRoleToRBACRole[role])
				}
				if err != nil {
					return fmt.Errorf("failed to grant role: %w", err)
				}
			}

			fmt.Printf("user_id: %s\nrole: %s\ntoken: %s\n", userID, role, token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userIDStr, "user", "", "User id (defaults to a fresh uuid)")
	cmd.Flags().StringVar(&role, "role", "patient", "Token role: admin, patient or superadmin")
	cmd.Flags().BoolVar(&grant, "grant", false, "Also assign the matching Casbin role")

	return cmd
}
