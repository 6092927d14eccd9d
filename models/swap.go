package models

import (
	"errors"
	"strings"
	"time"
)

type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCompleted SwapStatus = "completed"
)

// SwapRequest is a proposed exchange: a requester asks for an item,
// optionally offering one of their own.
type SwapRequest struct {
	ID            string     `json:"id"`
	RequesterID   string     `json:"requester_id"`
	ItemID        string     `json:"item_id"`
	OfferedItemID string     `json:"offered_item_id,omitempty"`
	Message       string     `json:"message"`
	Status        SwapStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// MapSwapStatus maps a request string to a swap status.
func MapSwapStatus(s string) (SwapStatus, error) {
	switch strings.ToLower(s) {
	case string(SwapStatusPending):
		return SwapStatusPending, nil
	case string(SwapStatusAccepted):
		return SwapStatusAccepted, nil
	case string(SwapStatusRejected):
		return SwapStatusRejected, nil
	case string(SwapStatusCompleted):
		return SwapStatusCompleted, nil
	default:
		return "", errors.New("invalid swap status")
	}
}
