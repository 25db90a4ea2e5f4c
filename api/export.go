package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"expenses/database"
	"expenses/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler serves the expense export endpoints.
type ExportHandler struct{}

// NewExportHandler creates an export handler.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// exportRange reads the required start_date/end_date parameters and loads the
// expenses of the range, newest insertion first.
func exportRange(c *gin.Context) (start, end models.Date, expenses []models.Expense, ok bool) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr == "" || endStr == "" {
		BadRequest(c, "start_date and end_date are required")
		return
	}

	start, err := models.ParseDate(startStr)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	end, err = models.ParseDate(endStr)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	if err := database.DB.
		Where("date >= ? AND date <= ?", start.String(), end.String()).
		Order("timestamp DESC").
		Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	return start, end, expenses, true
}

// ExportCSV exports expenses of a date range as CSV.
// @Summary Export expenses as CSV
// @Description Exports all expenses within the inclusive date range as a CSV attachment.
// @Tags export
// @Produce text/csv
// @Param start_date query string true "inclusive lower bound (2024-01-01)"
// @Param end_date query string true "inclusive upper bound (2024-12-31)"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} ErrorResponse
// @Router /api/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	start, end, expenses, ok := exportRange(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// BOM so spreadsheet tools detect UTF-8.
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "Amount", "Category", "Description", "Date", "Timestamp"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "write CSV failed")
		return
	}

	for _, expense := range expenses {
		row := []string{
			fmt.Sprintf("%d", expense.ID),
			fmt.Sprintf("%.2f", expense.Amount),
			expense.CategoryID,
			expense.Description,
			expense.Date.String(),
			expense.Timestamp.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "write CSV failed")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "write CSV failed")
		return
	}

	filename := fmt.Sprintf("expenses_%s_%s.csv", start, end)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON exports expenses of a date range as JSON with totals.
// @Summary Export expenses as JSON
// @Description Exports all expenses within the inclusive date range together with the row count and summed amount.
// @Tags export
// @Produce json
// @Param start_date query string true "inclusive lower bound (2024-01-01)"
// @Param end_date query string true "inclusive upper bound (2024-12-31)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /api/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	start, end, expenses, ok := exportRange(c)
	if !ok {
		return
	}

	var totalAmount float64
	for _, expense := range expenses {
		totalAmount += expense.Amount
	}

	OK(c, gin.H{
		"start_date":   start.String(),
		"end_date":     end.String(),
		"total_count":  len(expenses),
		"total_amount": totalAmount,
		"expenses":     expenses,
	})
}

// ExportExcel exports expenses of a date range as a styled XLSX workbook.
// @Summary Export expenses as Excel
// @Description Exports all expenses within the inclusive date range as an XLSX attachment.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_date query string true "inclusive lower bound (2024-01-01)"
// @Param end_date query string true "inclusive upper bound (2024-12-31)"
// @Success 200 {file} file "XLSX file"
// @Failure 400 {object} ErrorResponse
// @Router /api/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	start, end, expenses, ok := exportRange(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Expenses"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 16)
	f.SetColWidth(sheetName, "D", "D", 32)
	f.SetColWidth(sheetName, "E", "E", 14)
	f.SetColWidth(sheetName, "F", "F", 24)

	headers := []string{"ID", "Amount", "Category", "Description", "Date", "Timestamp"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, expense := range expenses {
		values := []interface{}{
			expense.ID,
			expense.Amount,
			expense.CategoryID,
			expense.Description,
			expense.Date.String(),
			expense.Timestamp.Format(time.RFC3339),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
			f.SetCellStyle(sheetName, cell, cell, dataStyle)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "write workbook failed")
		return
	}

	filename := fmt.Sprintf("expenses_%s_%s.xlsx", start, end)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
