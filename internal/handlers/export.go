package handlers

import (
	"fmt"
	"net/http"

	"envmonitor/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const (
	sheetReadings = "Readings"
	sheetSummary  = "Summary"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportTimeFmt   = "2006-01-02 15:04:05"
)

// @Summary      Export readings as xlsx
// @Description  Workbook with a readings sheet (newest first) and an aggregate summary sheet for the same window.
// @Tags         readings
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        window  query  string  false  "Time window for the summary sheet"  example(today)
// @Success      200  {file}    binary
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/readings/export [get]
func (h *Handler) exportReadings(c *gin.Context) {
	ctx := c.Request.Context()

	window, err := parseWindow(c.Query("window"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	readings, err := h.services.Readings.FetchAll(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errFetchReadings, "export_fetch_failed", err)
		return
	}
	report := h.services.Stats.Compute(readings, window)

	f, err := buildWorkbook(readings, report)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to build workbook", "export_build_failed", err)
		return
	}
	defer func() { _ = f.Close() }()

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="readings.xlsx"`)
	if err := f.Write(c.Writer); err != nil && h.log != nil {
		h.log.Infow("export_write_failed", "err", err)
	}
}

func buildWorkbook(readings []models.Reading, report models.AggregateReport) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetReadings); err != nil {
		return nil, err
	}

	header := []any{"Timestamp (UTC)", "Temperature (°C)", "Humidity (%)", "Light Intensity"}
	if err := f.SetSheetRow(sheetReadings, "A1", &header); err != nil {
		return nil, err
	}
	for i, r := range readings {
		row := []any{r.Timestamp.UTC().Format(exportTimeFmt), r.Temperature, r.Humidity, r.LightIntensity}
		if err := f.SetSheetRow(sheetReadings, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, err
	}
	if err := writeSummary(f, report); err != nil {
		return nil, err
	}
	return f, nil
}

func writeSummary(f *excelize.File, report models.AggregateReport) error {
	rows := [][]any{
		{"Window", report.Window},
		{"Samples", report.Count},
	}
	if !report.HasData {
		rows = append(rows, []any{"No data in window"})
	} else {
		rows = append(rows,
			[]any{},
			[]any{"Metric", "Average", "Min", "Min At", "Max", "Max At", "Std Dev"},
			summaryRow("Temperature", report.Temperature),
			summaryRow("Humidity", report.Humidity),
			summaryRow("Light Intensity", report.LightIntensity),
		)
	}
	for i, row := range rows {
		r := row
		if err := f.SetSheetRow(sheetSummary, fmt.Sprintf("A%d", i+1), &r); err != nil {
			return err
		}
	}
	return nil
}

func summaryRow(name string, m models.MetricStats) []any {
	return []any{
		name,
		m.Average,
		m.Min,
		m.MinAt.UTC().Format(exportTimeFmt),
		m.Max,
		m.MaxAt.UTC().Format(exportTimeFmt),
		m.StdDev,
	}
}
