package database

import "retrospace/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Profile{},
		&models.FriendRequest{},
		&models.Testimonial{},
		&models.ProfileVisit{},
		&models.TopFive{},
		&models.Album{},
		&models.GalleryImage{},
	}
}
