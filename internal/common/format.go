package common

import (
	"fmt"
	"strings"
	"time"

	"e-station-go/internal/models"
	"e-station-go/internal/ranking"

	"github.com/shopspring/decimal"
)

const (
	// Default separator widths
	DefaultWidth = 80
	WideWidth    = 100

	// ScheduleLayout renders a reservation's date and time (dd/MM/yyyy - HH:mm)
	ScheduleLayout = "02/01/2006 - 15:04"
)

// PrintSeparator prints a separator line with the specified character and width
func PrintSeparator(char string, width int) {
	fmt.Println(strings.Repeat(char, width))
}

// PrintSeparatorNewline prints a separator with a newline before it
func PrintSeparatorNewline(char string, width int) {
	fmt.Println("\n" + strings.Repeat(char, width))
}

// PrintHeader prints a formatted header with title and separators
func PrintHeader(title string, width int) {
	PrintSeparatorNewline("=", width)
	fmt.Println(title)
	PrintSeparator("=", width)
}

// PrintFooter prints a formatted footer with message and separators
func PrintFooter(message string, width int) {
	PrintSeparatorNewline("=", width)
	fmt.Println(message)
	fmt.Println(strings.Repeat("=", width) + "\n")
}

// BoxPrefix returns the appropriate box-drawing prefix for list items
func BoxPrefix(isLast bool) string {
	if isLast {
		return "└  "
	}
	return "│  "
}

// BoxDetailPrefix returns the prefix for detail lines under list items
func BoxDetailPrefix(isLast bool) string {
	if isLast {
		return "   "
	}
	return "│  "
}

// FormatMoney renders an amount in reais with two decimals
func FormatMoney(amount decimal.Decimal) string {
	return "R$ " + amount.StringFixed(2)
}

// FormatSchedule renders a reservation time in the given location
func FormatSchedule(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(ScheduleLayout)
}

// PrintStation prints one ranked catalog entry
func PrintStation(station models.Station, isLast bool) {
	detail := BoxDetailPrefix(isLast)
	fmt.Printf("%s[%d] %s (%s)\n", BoxPrefix(isLast), station.Id, station.Name, station.Status)
	fmt.Printf("%s    %s | %s\n", detail, ranking.FormatDistance(station), station.Address)
	fmt.Printf("%s    %s Vagas | %s | R$ %.2f / kWh\n", detail, station.Vacancies, station.Power, station.Price)
}

// PrintReservation prints one reservation
func PrintReservation(r models.Reservation, loc *time.Location, isLast bool) {
	detail := BoxDetailPrefix(isLast)
	fmt.Printf("%s%s  [%s]\n", BoxPrefix(isLast), r.StationName, r.Status)
	fmt.Printf("%s    Date: %s\n", detail, FormatSchedule(r.ScheduledAt, loc))
	fmt.Printf("%s    Connector: %s | Duration: %s\n", detail, r.Connector, r.Duration)
}

// PrintTransaction prints one credit transaction
func PrintTransaction(t models.CreditTransaction, isLast bool) {
	fmt.Printf("%s+ %-14s %s\n", BoxPrefix(isLast), FormatMoney(t.Amount), t.Date)
}
