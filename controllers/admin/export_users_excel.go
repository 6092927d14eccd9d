package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/rewear-app/rewear-api/localauth"
)

const timeLayout = "2006-01-02 15:04:05"

// GET /admin/export-excel — the account table as a spreadsheet, credentials
// excluded.
func ExportUsersToExcel(svc *localauth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := svc.ExportSnapshot()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Users")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Email", "Name", "Points", "VisitCount",
			"LastVisit", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, u := range snapshot.Users {
			row := sheet.AddRow()

			row.AddCell().SetValue(u.ID)
			row.AddCell().SetValue(u.Email)
			row.AddCell().SetValue(u.Name)
			row.AddCell().SetValue(u.Points)
			row.AddCell().SetValue(u.VisitCount)
			if u.LastVisit != nil {
				row.AddCell().SetValue(u.LastVisit.Format(timeLayout))
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(u.CreatedAt.Format(timeLayout))
			row.AddCell().SetValue(u.UpdatedAt.Format(timeLayout))
		}

		// Visit log on its own sheet
		visitSheet, err := file.AddSheet("Visits")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}
		visitHeader := visitSheet.AddRow()
		for _, h := range []string{"Email", "Name", "VisitTime", "UserID"} {
			visitHeader.AddCell().SetValue(h)
		}
		for _, v := range snapshot.RecentVisits {
			row := visitSheet.AddRow()
			row.AddCell().SetValue(v.Email)
			row.AddCell().SetValue(v.Name)
			row.AddCell().SetValue(v.VisitTime.Format(timeLayout))
			row.AddCell().SetValue(v.UserID)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=users.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
