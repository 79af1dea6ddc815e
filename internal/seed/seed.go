package seed

import (
	"fmt"
	"log"

	"retrospace/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	ShouldClean bool
	SkipBcrypt  bool
	// MaxDays bounds how far into the past generated timestamps spread.
	MaxDays int
}

// Seed populates the database with demo data: users with filled-in
// profiles, a friendship mesh, testimonials, top five lists, visits and
// photo albums.
func Seed(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	log.Printf("Seeding database with %d users...", opts.NumUsers)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("%d users created", len(users))

	if err := seedSocialMesh(factory, users); err != nil {
		return err
	}

	log.Println("Seeding complete")
	return nil
}

// seedSocialMesh links users together and fills their pages with content.
func seedSocialMesh(factory *Factory, users []*models.User) error {
	if len(users) < 2 {
		return nil
	}

	// Each user befriends roughly a third of the users after them, so
	// the mesh is connected without being complete.
	for i, user := range users {
		for j := i + 1; j < len(users); j++ {
			switch factory.rng.Intn(6) {
			case 0, 1:
				if _, err := factory.CreateFriendship(user, users[j]); err != nil {
					return fmt.Errorf("failed to create friendship: %w", err)
				}
			case 2:
				if _, err := factory.CreatePendingRequest(user, users[j]); err != nil {
					return fmt.Errorf("failed to create friend request: %w", err)
				}
			}
		}
	}

	for _, user := range users {
		// A couple of testimonials from random other users
		for i := 0; i < 2; i++ {
			author := users[factory.rng.Intn(len(users))]
			if author.ID == user.ID {
				continue
			}
			if _, err := factory.CreateTestimonial(user, author); err != nil {
				return fmt.Errorf("failed to create testimonial: %w", err)
			}
		}

		if _, err := factory.CreateTopFive(user); err != nil {
			return fmt.Errorf("failed to create top five: %w", err)
		}

		for i := 0; i < factory.rng.Intn(5); i++ {
			visitor := users[factory.rng.Intn(len(users))]
			if visitor.ID == user.ID {
				continue
			}
			if _, err := factory.CreateVisit(user, visitor); err != nil {
				return fmt.Errorf("failed to create visit: %w", err)
			}
		}

		if factory.rng.Intn(2) == 0 {
			if _, err := factory.CreateAlbumWithImages(user, 1+factory.rng.Intn(4)); err != nil {
				return fmt.Errorf("failed to create album: %w", err)
			}
		}
	}
	return nil
}

// clearData removes seedable rows in dependency order.
func clearData(db *gorm.DB) error {
	tables := []string{
		"gallery_images", "albums", "top_fives", "profile_visits",
		"testimonials", "friend_requests", "profiles", "users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
