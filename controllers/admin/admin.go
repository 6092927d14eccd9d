package adminControllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rewear-app/rewear-api/localauth"
	"github.com/rewear-app/rewear-api/models"
)

// GET /admin/stats — the dashboard headline numbers.
func GetStats(svc *localauth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		users := svc.AllUsers()

		totalPoints := 0
		highPoints := 0
		recent := 0
		active := 0
		weekAgo := time.Now().UTC().AddDate(0, 0, -7)
		for _, u := range users {
			totalPoints += u.Points
			if u.Points >= 200 {
				highPoints++
			}
			if u.CreatedAt.After(weekAgo) {
				recent++
			}
			if u.VisitCount > 1 {
				active++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"total_users":         len(users),
			"total_visits":        len(svc.AllVisits()),
			"total_unique_emails": len(svc.AllEmails()),
			"total_points":        totalPoints,
			"high_points_users":   highPoints,
			"recent_users":        recent,
			"active_users":        active,
		})
	}
}

// GET /admin/users
func GetAllUsers(svc *localauth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		users := svc.AllUsers()
		public := make([]models.PublicUser, 0, len(users))
		for _, u := range users {
			public = append(public, u.Public())
		}
		c.JSON(http.StatusOK, public)
	}
}

// GET /admin/export — the user-data report as a JSON download.
func ExportUserData(svc *localauth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := svc.ExportSnapshot()
		filename := fmt.Sprintf("user_data_%s.json", snapshot.ExportDate.Format("2006-01-02"))
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.JSON(http.StatusOK, snapshot)
	}
}
