package report

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Attendance"

// ReportService renders classified attendance records for download.
type ReportService interface {
	// ExportAttendanceXLSX builds a spreadsheet for the filtered range:
	// one row per record plus a status summary block.
	ExportAttendanceXLSX(ctx context.Context, req attendance.ListRequest) ([]byte, error)
}

type ReportServiceImpl struct {
	attendanceService attendance.AttendanceService
}

func NewReportService(attendanceService attendance.AttendanceService) ReportService {
	return &ReportServiceImpl{attendanceService: attendanceService}
}

// ExportAttendanceXLSX implements ReportService.
func (s *ReportServiceImpl) ExportAttendanceXLSX(ctx context.Context, req attendance.ListRequest) ([]byte, error) {
	records, err := s.attendanceService.ListAll(ctx, req)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name report sheet: %w", err)
	}

	header := []interface{}{"Date", "Employee ID", "Name", "Department", "Shift", "Login", "Logout", "Hours", "Late", "Status"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	for i, r := range records {
		resp := attendance.ToResponse(r)
		row := []interface{}{
			resp.Date,
			resp.EmployeeID,
			resp.EmployeeName,
			resp.Department,
			resp.Shift,
			orDash(resp.Login),
			orDash(resp.Logout),
			resp.TotalHours,
			resp.Late,
			resp.Status,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write report row: %w", err)
		}
	}

	// Summary block two rows under the table.
	summary := attendance.Summarize(records)
	base := len(records) + 4
	if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", base), &[]interface{}{"Status", "Count", "Percent"}); err != nil {
		return nil, fmt.Errorf("failed to write summary header: %w", err)
	}
	for i, sc := range summary.Statuses {
		row := []interface{}{string(sc.Status), sc.Count, fmt.Sprintf("%.2f", sc.Percent)}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", base+1+i), &row); err != nil {
			return nil, fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	totalRow := []interface{}{"Total", summary.Total}
	if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", base+1+len(summary.Statuses)), &totalRow); err != nil {
		return nil, fmt.Errorf("failed to write summary total: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize report: %w", err)
	}
	return buf.Bytes(), nil
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
