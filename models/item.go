package models

import (
	"errors"
	"time"
)

type ItemStatus string
type ItemCondition string

const (
	// Item statuses move forward only: available -> pending -> swapped.
	ItemStatusAvailable ItemStatus = "available"
	ItemStatusPending   ItemStatus = "pending"
	ItemStatusSwapped   ItemStatus = "swapped"

	ConditionNew     ItemCondition = "New"
	ConditionLikeNew ItemCondition = "Like New"
	ConditionGood    ItemCondition = "Good"
	ConditionFair    ItemCondition = "Fair"
)

// Item is a listed garment. UserID is a weak reference to the owning
// account; there is no cascade delete.
type Item struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Size        string        `json:"size"`
	Condition   ItemCondition `json:"condition"`
	Images      []string      `json:"images"`
	Tags        []string      `json:"tags"`
	PointValue  int           `json:"point_value"`
	Status      ItemStatus    `json:"status"`
	UserID      string        `json:"user_id"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// MapItemCondition maps a request string to a garment condition.
func MapItemCondition(s string) (ItemCondition, error) {
	switch s {
	case string(ConditionNew):
		return ConditionNew, nil
	case string(ConditionLikeNew):
		return ConditionLikeNew, nil
	case string(ConditionGood):
		return ConditionGood, nil
	case string(ConditionFair):
		return ConditionFair, nil
	default:
		return "", errors.New("invalid item condition")
	}
}

// SuggestedPointValue returns the default point value offered for a
// condition when listing an item.
func SuggestedPointValue(c ItemCondition) int {
	switch c {
	case ConditionNew:
		return 100
	case ConditionLikeNew:
		return 80
	case ConditionGood:
		return 60
	case ConditionFair:
		return 40
	default:
		return 50
	}
}
