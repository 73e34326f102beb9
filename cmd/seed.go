package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"stakegulf-cms/migration"
	"stakegulf-cms/models"
	"stakegulf-cms/repositories"
	"stakegulf-cms/services"
)

var (
	seedUsername string
	seedEmail    string
	seedPassword string
	seedName     string
	seedReset    bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the superadmin, default settings and default pages",
	Long: `Upsert a superadmin account and insert the default site settings and
pages. Existing settings and pages are kept.

Examples:
  stakegulf-cms seed --username admin --email admin@example.com --password s3cret
  stakegulf-cms seed --reset --username admin --email admin@example.com --password s3cret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		return runSeed(cmd.Context(), db, log)
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedUsername, "username", "", "Superadmin username")
	seedCmd.Flags().StringVar(&seedEmail, "email", "", "Superadmin email")
	seedCmd.Flags().StringVar(&seedPassword, "password", "", "Superadmin password")
	seedCmd.Flags().StringVar(&seedName, "name", "Super Admin", "Superadmin display name")
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "Empty every table before seeding")
	_ = seedCmd.MarkFlagRequired("username")
	_ = seedCmd.MarkFlagRequired("email")
	_ = seedCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(seedCmd)
}

var defaultSettings = []models.Setting{
	{Key: "site_font", Value: strPtr("Inter"), Type: "font", Description: strPtr("Default font for the website")},
	{Key: "site_name", Value: strPtr("stakegulf"), Type: "string", Description: strPtr("Website name")},
	{Key: "site_description", Value: strPtr("Your trusted gambling reviews platform"), Type: "string", Description: strPtr("Website description")},
}

var defaultPages = []models.Page{
	{Title: "About Us", Slug: "about", Content: strPtr("<h1>About stakegulf</h1><p>We are a team of experts dedicated to providing the best betting platform reviews.</p>")},
	{Title: "Privacy Policy", Slug: "privacy", Content: strPtr("<h1>Privacy Policy</h1><p>Your privacy is important to us.</p>")},
	{Title: "Terms of Service", Slug: "terms", Content: strPtr("<h1>Terms of Service</h1><p>By using this site, you agree to these terms.</p>")},
	{Title: "Contact Us", Slug: "contact", Content: strPtr("<h1>Contact Us</h1><p>Get in touch with us via email or Telegram.</p>")},
}

func runSeed(ctx context.Context, db *gorm.DB, log *slog.Logger) error {
	if len(seedPassword) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	if err := migration.Apply(db); err != nil {
		return err
	}
	if seedReset {
		if err := migration.Truncate(db); err != nil {
			return fmt.Errorf("reset tables: %w", err)
		}
		log.Warn("all tables emptied")
	}

	hashed, err := services.NewBcryptHasher().Hash(seedPassword)
	if err != nil {
		return err
	}
	admin := &models.User{
		Username: seedUsername,
		Email:    seedEmail,
		Password: hashed,
		Name:     &seedName,
		Role:     models.RoleSuperadmin,
		IsActive: true,
	}
	if err := repositories.NewUserRepository(db).Upsert(ctx, admin); err != nil {
		return fmt.Errorf("upsert superadmin: %w", err)
	}
	log.Info("superadmin ready", "username", admin.Username)

	// Seeding is not user activity, so nothing is recorded.
	settings := services.NewSettingService(repositories.NewSettingRepository(db), nil)
	for i := range defaultSettings {
		if err := settings.EnsureDefault(ctx, &defaultSettings[i]); err != nil {
			return fmt.Errorf("seed setting %s: %w", defaultSettings[i].Key, err)
		}
	}

	pages := services.NewPageService(repositories.NewPageRepository(db), nil)
	for i := range defaultPages {
		page := defaultPages[i]
		page.Status = "published"
		page.ContentBlocks = models.ContentBlocks{}
		if err := pages.EnsureDefault(ctx, &page); err != nil {
			return fmt.Errorf("seed page %s: %w", page.Slug, err)
		}
	}

	log.Info("seed complete", "settings", len(defaultSettings), "pages", len(defaultPages))
	return nil
}

func strPtr(s string) *string {
	return &s
}
