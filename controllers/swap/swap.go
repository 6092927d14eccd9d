package swapControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rewear-app/rewear-api/dataaccess"
	"github.com/rewear-app/rewear-api/models"
)

const defaultSwapMessage = "Hi! I'm interested in swapping for this item."

type CreateSwapInput struct {
	ItemID        string `json:"item_id" binding:"required"`
	OfferedItemID string `json:"offered_item_id"`
	Message       string `json:"message"`
}

type UpdateSwapInput struct {
	Status  string  `json:"status" binding:"required"`
	Message *string `json:"message"`
}

// POST /user/swaps
func CreateSwap(data *dataaccess.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)

		var input CreateSwapInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := data.Items().Eq("id", input.ItemID).Single()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate item"})
			return
		}
		if item == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item does not exist"})
			return
		}
		if item.UserID == userID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot swap with yourself"})
			return
		}

		message := input.Message
		if message == "" {
			message = defaultSwapMessage
		}

		swap, err := data.SwapRequests().Insert(models.SwapRequest{
			RequesterID:   userID,
			ItemID:        input.ItemID,
			OfferedItemID: input.OfferedItemID,
			Message:       message,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create swap request"})
			return
		}
		c.JSON(http.StatusCreated, swap)
	}
}

// GET /user/swaps — requests involving the caller. The item-owner side of
// this query matches the stored rows only through requester_id; the dotted
// path into the item record does not resolve against a flat row, which is
// the long-standing behavior callers see.
func MySwaps(data *dataaccess.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)

		swaps, err := data.SwapRequests().
			Or(
				dataaccess.OrCond{Field: "requester_id", Op: "eq", Value: userID},
				dataaccess.OrCond{Field: "item.user_id", Op: "eq", Value: userID},
			).
			OrderBy("created_at", false).
			All()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch swap requests"})
			return
		}
		c.JSON(http.StatusOK, swaps)
	}
}

// GET /admin/swaps
func ListSwaps(data *dataaccess.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		swaps, err := data.SwapRequests().OrderBy("created_at", false).All()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch swap requests"})
			return
		}
		c.JSON(http.StatusOK, swaps)
	}
}

// PUT /admin/swaps/:id — accept, reject, edit message.
func UpdateSwap(data *dataaccess.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
			return
		}

		var input UpdateSwapInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status, err := models.MapSwapStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		patch := map[string]any{"id": id, "status": string(status)}
		if input.Message != nil {
			patch["message"] = *input.Message
		}

		swap, err := data.SwapRequests().Update(patch)
		if err != nil {
			if errors.Is(err, dataaccess.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Swap request not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update swap request"})
			return
		}
		c.JSON(http.StatusOK, swap)
	}
}
