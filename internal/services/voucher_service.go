package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"tassili/internal/models/response_models"
)

type VoucherServiceInterface interface {
	GenerateVoucher(booking *response_models.BookingResponse) ([]byte, error)
}

type VoucherService struct{}

func NewVoucherService() VoucherServiceInterface {
	return &VoucherService{}
}

// GenerateVoucher renders a one-page booking voucher PDF and returns the raw
// bytes (no filesystem needed).
func (v *VoucherService) GenerateVoucher(booking *response_models.BookingResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(14, 165, 233)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Tassili", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Booking Voucher", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(15, 23, 42)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	sectionHeader("Booking")
	row("Reference", booking.Reference)
	row("Booked", booking.BookingDate)
	row("Status", booking.Status)
	row("Payment", fmt.Sprintf("%s (%s)", booking.PaymentMethod, booking.PaymentStatus))
	pdf.Ln(4)

	sectionHeader("Trip")
	row("Title", booking.Trip.Title)
	row("Location", booking.Trip.Location)
	row("Agency", booking.Trip.Agency)
	row("Duration", booking.Trip.Duration)
	row("Travel dates", fmt.Sprintf("%s - %s", booking.StartDate, booking.EndDate))
	pdf.Ln(4)

	sectionHeader(fmt.Sprintf("Travelers (%d)", len(booking.Travelers)))
	for i, t := range booking.Travelers {
		name := t.FullName
		if t.PassportNumber != "" {
			name = fmt.Sprintf("%s (passport %s)", name, t.PassportNumber)
		}
		row(fmt.Sprintf("Traveler %d", i+1), fmt.Sprintf("%s, age %d", name, t.Age))
	}
	if booking.SpecialRequests != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(80, 80, 80)
		pdf.MultiCell(170, 5, "Special requests: "+booking.SpecialRequests, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(4)

	pdf.SetFillColor(14, 165, 233)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL PAID", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, booking.TotalDisplay, "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		fmt.Sprintf("Present this voucher with reference %s to your agency on arrival.", booking.Reference),
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
