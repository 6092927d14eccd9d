package itemControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rewear-app/rewear-api/dataaccess"
	"github.com/rewear-app/rewear-api/models"
)

type CreateItemInput struct {
	Title       string   `json:"title" binding:"required,min=3"`
	Description string   `json:"description" binding:"required,min=10"`
	Category    string   `json:"category" binding:"required"`
	Size        string   `json:"size" binding:"required"`
	Condition   string   `json:"condition" binding:"required"`
	PointValue  int      `json:"point_value" binding:"omitempty,min=1,max=500"`
	Images      []string `json:"images" binding:"required,min=1,max=5"`
	Tags        []string `json:"tags"`
}

// GET /items
func ListItems(data *dataaccess.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := data.Items().Eq("status", string(models.ItemStatusAvailable))

		if category := c.Query("category"); category != "" {
			q = q.Eq("category", category)
		}
		if size := c.Query("size"); size != "" {
			q = q.Eq("size", size)
		}
		if condition := c.Query("condition"); condition != "" {
			q = q.Eq("condition", condition)
		}
		if search := c.Query("search"); search != "" {
			q = q.Or(
				dataaccess.OrCond{Field: "title", Op: "ilike", Value: search},
				dataaccess.OrCond{Field: "description", Op: "ilike", Value: search},
			)
		}

		switch c.DefaultQuery("sort", "newest") {
		case "oldest":
			q = q.OrderBy("created_at", true)
		case "points-low":
			q = q.OrderBy("point_value", true)
		case "points-high":
			q = q.OrderBy("point_value", false)
		default: // newest
			q = q.OrderBy("created_at", false)
		}

		items, err := q.All()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /items/latest — the landing page strip of the newest listings.
func LatestItems(data *dataaccess.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := data.Items().
			Eq("status", string(models.ItemStatusAvailable)).
			OrderBy("created_at", false).
			Limit(8).
			All()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /items/:id
func GetItem(data *dataaccess.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := data.Items().Eq("id", c.Param("id")).Single()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch item"})
			return
		}
		if item == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// GET /user/items — the dashboard's "my listings" view.
func MyItems(data *dataaccess.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)

		items, err := data.Items().
			Eq("user_id", userID).
			OrderBy("created_at", false).
			All()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /user/items
func CreateItem(data *dataaccess.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)

		var input CreateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		condition, err := models.MapItemCondition(input.Condition)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// An omitted point value falls back to the condition's suggestion.
		pointValue := input.PointValue
		if pointValue == 0 {
			pointValue = models.SuggestedPointValue(condition)
		}

		tags := input.Tags
		if tags == nil {
			tags = []string{}
		}

		item, err := data.Items().Insert(models.Item{
			Title:       input.Title,
			Description: input.Description,
			Category:    input.Category,
			Size:        input.Size,
			Condition:   condition,
			Images:      input.Images,
			Tags:        tags,
			PointValue:  pointValue,
			Status:      models.ItemStatusAvailable,
			UserID:      userID,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// GET /categories — the listing form's vocabulary, including the suggested
// point value per condition.
func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		suggested := make(map[string]int)
		for _, cond := range []models.ItemCondition{
			models.ConditionNew, models.ConditionLikeNew, models.ConditionGood, models.ConditionFair,
		} {
			suggested[string(cond)] = models.SuggestedPointValue(cond)
		}
		c.JSON(http.StatusOK, gin.H{
			"categories":       models.Categories,
			"sizes":            models.Sizes,
			"suggested_points": suggested,
		})
	}
}
