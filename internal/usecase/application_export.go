package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"
)

var exportHeaders = map[string]string{
	"id":            "ID",
	"vacancy":       "VACANCY",
	"name":          "NAME",
	"phone":         "PHONE",
	"region":        "REGION",
	"interest":      "INTEREST",
	"status":        "STATUS",
	"contract":      "CONTRACT",
	"age":           "AGE",
	"experience":    "EXPERIENCE",
	"salary_worker": "EXPECTED SALARY",
	"created_at":    "CREATED AT",
}

// Export renders the employer's candidates as a spreadsheet download.
func (uc *applicationUsecase) Export(ctx context.Context, employerID string, req domain.ApplicationExportRequest) (*domain.ExportFile, error) {
	columns, err := exportColumns(req.Columns)
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(req.Format)
	if format == "" {
		format = domain.ExportFormatXLSX
	}
	if format != domain.ExportFormatXLSX && format != domain.ExportFormatCSV {
		return nil, apperror.BadRequest(fmt.Sprintf("unsupported export format: %s", req.Format))
	}

	apps, err := uc.appRepo.FetchByOwner(ctx, employerID)
	if err != nil {
		return nil, err
	}

	stamp := time.Now().Format("20060102_150405")
	if format == domain.ExportFormatCSV {
		data, err := exportCSV(apps, columns)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return &domain.ExportFile{
			Data:        data,
			Filename:    "candidates_" + stamp + ".csv",
			ContentType: contentTypeCSV,
		}, nil
	}

	data, err := exportExcel(apps, columns)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.ExportFile{
		Data:        data,
		Filename:    "candidates_" + stamp + ".xlsx",
		ContentType: contentTypeXLSX,
	}, nil
}

// exportColumns defaults to every column and drops duplicates.
func exportColumns(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return domain.ExportableApplicationColumns, nil
	}

	seen := make(map[string]bool, len(requested))
	columns := make([]string, 0, len(requested))
	for _, col := range requested {
		col = strings.TrimSpace(col)
		if col == "" || seen[col] {
			continue
		}
		if _, ok := exportHeaders[col]; !ok {
			return nil, apperror.BadRequest(fmt.Sprintf("invalid export column: %s", col))
		}
		seen[col] = true
		columns = append(columns, col)
	}
	if len(columns) == 0 {
		return domain.ExportableApplicationColumns, nil
	}
	return columns, nil
}

func exportExcel(apps []domain.Application, columns []string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Candidates"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, exportHeaders[col])
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, app := range apps {
		for colIdx, col := range columns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, exportValue(app, col))
		}
	}

	for i := range columns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func exportCSV(apps []domain.Application, columns []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = exportHeaders[col]
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, app := range apps {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = fmt.Sprint(exportValue(app, col))
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// exportValue returns the cell for col with text cells neutralized.
func exportValue(app domain.Application, col string) any {
	v := rawExportValue(app, col)
	if s, ok := v.(string); ok {
		return neutralizeFormula(s)
	}
	return v
}

func rawExportValue(app domain.Application, col string) any {
	switch col {
	case "id":
		return app.ID
	case "vacancy":
		if app.Offer != nil {
			return app.Offer.Title
		}
		return ""
	case "name":
		return app.Name
	case "phone":
		return app.Phone
	case "region":
		return app.Region
	case "interest":
		return deref(app.Interest)
	case "status":
		return app.Status
	case "contract":
		return deref(app.Contract)
	case "age":
		if app.Age != nil {
			return strconv.Itoa(*app.Age)
		}
		return ""
	case "experience":
		return deref(app.Experience)
	case "salary_worker":
		return deref(app.SalaryWorker)
	case "created_at":
		return app.CreatedAt.UTC().Format(time.RFC3339)
	}
	return ""
}

// neutralizeFormula prefixes a quote to text that a spreadsheet would
// otherwise evaluate as a formula.
func neutralizeFormula(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
