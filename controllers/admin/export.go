package adminController

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/SumanKr7/CosmoXclub/store"
)

// GET /export/users.xlsx
func ExportUsersToExcel(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := st.AllUsers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Users")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"UID", "Name", "Email", "Phone", "EmailVerified",
			"City", "State", "HouseStatus", "GuestPoints",
			"Plan", "PlanStart", "PlanEnd", "SubmittedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		uids := make([]string, 0, len(users))
		for uid := range users {
			uids = append(uids, uid)
		}
		sort.Strings(uids)

		// Data rows
		for _, uid := range uids {
			u := users[uid]
			row := sheet.AddRow()

			row.AddCell().SetValue(uid)
			row.AddCell().SetValue(u.Name)
			row.AddCell().SetValue(u.Email)
			row.AddCell().SetValue(u.Phone)
			row.AddCell().SetValue(u.EmailVerified)
			row.AddCell().SetValue(u.City)
			row.AddCell().SetValue(u.State)

			if u.Properties != nil {
				row.AddCell().SetValue(u.Properties.HouseStatus)
				row.AddCell().SetValue(strconv.Itoa(u.Properties.GuestPoints))
			} else {
				row.AddCell().SetValue("")
				row.AddCell().SetValue("")
			}

			if u.MembershipDetails != nil {
				row.AddCell().SetValue(u.MembershipDetails.Plan)
				row.AddCell().SetValue(u.MembershipDetails.StartDate)
				row.AddCell().SetValue(u.MembershipDetails.EndDate)
			} else {
				row.AddCell().SetValue("")
				row.AddCell().SetValue("")
				row.AddCell().SetValue("")
			}

			row.AddCell().SetValue(u.SubmittedAt)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=users.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
