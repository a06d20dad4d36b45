// Seeds the default admin accounts and a starter set of active
// organizations. Safe to re-run: existing emails are skipped.
package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/givehub/backend/internal/config"
	"github.com/givehub/backend/internal/domain"
	"github.com/givehub/backend/internal/repo"
	"github.com/givehub/backend/internal/security"
)

type seedAdmin struct {
	name, email, password, role string
}

var admins = []seedAdmin{
	{"Admin User", "admin@example.com", "admin123", domain.RoleAdmin},
	{"System Admin", "system@example.com", "system123", domain.RoleSuperAdmin},
}

var organizations = []domain.Organization{
	{
		Name:        "Red Cross Society",
		Description: "International humanitarian organization providing emergency assistance and disaster relief",
		Email:       "redcross@example.com",
		Phone:       "+1234567890",
		Address:     "123 Humanitarian St, Global City",
		Website:     "https://redcross.org",
		Category:    "Disaster Relief",
		Status:      domain.OrgStatusActive,
	},
	{
		Name:        "Save the Children",
		Description: "Organization working to improve the lives of children through better education, health care, and economic opportunities",
		Email:       "savethechildren@example.com",
		Phone:       "+1234567891",
		Address:     "456 Children Ave, Global City",
		Website:     "https://savethechildren.org",
		Category:    "Children Welfare",
		Status:      domain.OrgStatusActive,
	},
	{
		Name:        "World Food Programme",
		Description: "United Nations organization fighting hunger worldwide",
		Email:       "wfp@example.com",
		Phone:       "+1234567892",
		Address:     "789 Food St, Global City",
		Website:     "https://wfp.org",
		Category:    "Food Security",
		Status:      domain.OrgStatusActive,
	},
}

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := repo.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer store.Close(context.Background())

	if err := store.EnsureIndexes(ctx); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	for _, sa := range admins {
		existing, err := store.FindAdminByEmail(ctx, sa.email)
		if err != nil {
			log.Fatalf("find admin: %v", err)
		}
		if existing != nil {
			log.Printf("admin %s already present, skipping", sa.email)
			continue
		}
		hash, err := security.HashPassword(sa.password)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		a := &domain.Admin{Name: sa.name, Email: sa.email, PasswordHash: hash, Role: sa.role}
		if err := store.CreateAdmin(ctx, a); err != nil {
			log.Fatalf("create admin %s: %v", sa.email, err)
		}
		log.Printf("seeded admin %s (%s)", sa.email, sa.role)
	}

	for i := range organizations {
		o := organizations[i]
		if err := store.CreateOrganization(ctx, &o); err != nil {
			if repo.IsDup(err) {
				log.Printf("organization %s already present, skipping", o.Email)
				continue
			}
			log.Fatalf("create organization %s: %v", o.Email, err)
		}
		log.Printf("seeded organization %s", o.Name)
	}

	if _, err := store.UpdateSettings(ctx, settingsDoc()); err != nil {
		log.Fatalf("seed settings: %v", err)
	}
	log.Println("seeding complete")
}

func settingsDoc() bson.M {
	s := domain.DefaultSettings()
	return bson.M{
		"general":       s.General,
		"donations":     s.Donations,
		"notifications": s.Notifications,
	}
}
