package models

import (
	"strings"
	"time"
)

// TopFiveCategory classifies a top-five list.
type TopFiveCategory string

const (
	TopFiveMovies  TopFiveCategory = "movies"
	TopFiveMusic   TopFiveCategory = "music"
	TopFiveGames   TopFiveCategory = "games"
	TopFiveFriends TopFiveCategory = "friends"
	TopFiveCustom  TopFiveCategory = "custom"
)

// Valid reports whether c is a recognized category.
func (c TopFiveCategory) Valid() bool {
	switch c {
	case TopFiveMovies, TopFiveMusic, TopFiveGames, TopFiveFriends, TopFiveCustom:
		return true
	}
	return false
}

// TopFive is a capped, ordered list of up to five items under a category.
// Items are stored newline-delimited; ListItems derives the rendered view.
type TopFive struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ProfileID uint            `gorm:"not null;index" json:"profile_id"`
	Category  TopFiveCategory `gorm:"type:varchar(20);default:music" json:"category"`
	Title     string          `gorm:"size:100;default:My Top 5" json:"title"`
	Items     string          `gorm:"type:text" json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

// TableName specifies the table name for GORM
func (TopFive) TableName() string {
	return "top_fives"
}

// ListItems returns the first five non-blank, whitespace-trimmed lines.
func (t *TopFive) ListItems() []string {
	items := make([]string, 0, 5)
	for _, line := range strings.Split(t.Items, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, line)
		if len(items) == 5 {
			break
		}
	}
	return items
}
