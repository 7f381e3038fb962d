package infra

// excel.go — report workbook export built with excelize.
// One sheet per report section so the file opens the way the reports screen
// presents the data.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ser180/4R/internal/dto"

	"github.com/xuri/excelize/v2"
)

// WriteReportWorkbook writes the report summary as an .xlsx workbook and
// returns the path of the generated file.
func WriteReportWorkbook(summary *dto.ReportSummaryResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("excel: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("reporte_%s.xlsx", time.Now().Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return "", fmt.Errorf("excel: style: %w", err)
	}

	writeSheet := func(name string, headers []string, rows [][]interface{}) error {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
		for col, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := f.SetCellValue(name, cell, h); err != nil {
				return err
			}
		}
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		if err := f.SetCellStyle(name, "A1", last, headerStyle); err != nil {
			return err
		}
		for r, row := range rows {
			for c, v := range row {
				cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
				if err := f.SetCellValue(name, cell, v); err != nil {
					return err
				}
			}
		}
		return nil
	}

	monthly := make([][]interface{}, 0, len(summary.MonthlyOrders))
	for _, r := range summary.MonthlyOrders {
		monthly = append(monthly, []interface{}{r.Month, r.Orders, r.Amount.InexactFloat64()})
	}
	if err := writeSheet("Compras por mes", []string{"Mes", "Órdenes", "Monto"}, monthly); err != nil {
		return "", fmt.Errorf("excel: monthly sheet: %w", err)
	}

	daily := make([][]interface{}, 0, len(summary.DailyMovements))
	for _, r := range summary.DailyMovements {
		daily = append(daily, []interface{}{r.Day, r.Entradas, r.Salidas})
	}
	if err := writeSheet("Movimientos por día", []string{"Día", "Entradas", "Salidas"}, daily); err != nil {
		return "", fmt.Errorf("excel: daily sheet: %w", err)
	}

	share := make([][]interface{}, 0, len(summary.SupplierShare))
	for _, r := range summary.SupplierShare {
		share = append(share, []interface{}{r.Name, r.Orders, r.Amount.InexactFloat64()})
	}
	if err := writeSheet("Proveedores", []string{"Proveedor", "Órdenes", "Monto"}, share); err != nil {
		return "", fmt.Errorf("excel: supplier sheet: %w", err)
	}

	trend := make([][]interface{}, 0, len(summary.KilosTrend))
	for _, r := range summary.KilosTrend {
		trend = append(trend, []interface{}{r.Month, r.Kilos.InexactFloat64()})
	}
	if err := writeSheet("Kilos por mes", []string{"Mes", "Kilos netos"}, trend); err != nil {
		return "", fmt.Errorf("excel: kilos sheet: %w", err)
	}

	// Drop the default empty sheet created by NewFile
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("excel: delete default sheet: %w", err)
	}

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("excel: write file: %w", err)
	}

	return filePath, nil
}
