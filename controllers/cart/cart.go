package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rewear-app/rewear-api/cart"
	"github.com/rewear-app/rewear-api/dataaccess"
	"github.com/rewear-app/rewear-api/storage"
)

type AddCartItemInput struct {
	ItemID string `json:"item_id" binding:"required"`
}

type SetQuantityInput struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

func userCart(c *gin.Context, store storage.Store) (*cart.Cart, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	userID, _ := userIDVal.(string)
	return cart.NewForUser(store, userID), true
}

func cartResponse(userCart *cart.Cart) gin.H {
	return gin.H{
		"items":        userCart.Entries(),
		"total_points": userCart.TotalPoints(),
		"item_count":   userCart.ItemCount(),
	}
}

// GET /user/cart
func GetUserCart(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, ok := userCart(c, store)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartResponse(userCart))
	}
}

// POST /user/cart — add one of an item; repeating the same item id bumps
// its quantity rather than creating a second entry.
func AddCartItem(store storage.Store, data *dataaccess.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, ok := userCart(c, store)
		if !ok {
			return
		}

		var input AddCartItemInput
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

		userCart.Add(*item)
		c.JSON(http.StatusOK, cartResponse(userCart))
	}
}

// PUT /user/cart — set an item's quantity; zero or less removes it.
func SetCartQuantity(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, ok := userCart(c, store)
		if !ok {
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		userCart.SetQuantity(input.ItemID, input.Quantity)
		c.JSON(http.StatusOK, cartResponse(userCart))
	}
}

// DELETE /user/cart/:item_id
func DeleteCartItem(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, ok := userCart(c, store)
		if !ok {
			return
		}
		userCart.Remove(c.Param("item_id"))
		c.JSON(http.StatusOK, cartResponse(userCart))
	}
}

// DELETE /user/cart
func ClearUserCart(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, ok := userCart(c, store)
		if !ok {
			return
		}
		userCart.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
