package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmessner/fieldlog/internal/dates"
	"github.com/tmessner/fieldlog/internal/record"
)

var (
	reportMonth  string
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a per-day report for a month",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportMonth, "month", "", "Month to report (YYYY-MM), defaults to the current month")
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json")
}

type reportDay struct {
	Date     string  `json:"date"`
	Hours    float64 `json:"hours"`
	LdcHours float64 `json:"ldcHours,omitempty"`
	Weather  string  `json:"weather,omitempty"`
	Status   string  `json:"status,omitempty"`
	Campaign bool    `json:"campaign,omitempty"`
}

type monthReport struct {
	Month      string      `json:"month"`
	Days       []reportDay `json:"days"`
	BulkHours  float64     `json:"bulkHours,omitempty"`
	TotalHours float64     `json:"totalHours"`
	LdcHours   float64     `json:"ldcHours"`
	Goal       float64     `json:"goal"`
}

func runReport(cmd *cobra.Command, args []string) error {
	anchor := time.Now()
	if reportMonth != "" {
		parsed, err := time.Parse("2006-01", reportMonth)
		if err != nil {
			return fmt.Errorf("cannot read %q as a month (want YYYY-MM)", reportMonth)
		}
		anchor = parsed
	}

	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	days, aggregates := record.MonthEntries(state, anchor)
	rep := monthReport{Month: anchor.Format("2006-01"), Goal: state.Goal}
	for _, d := range days {
		rep.Days = append(rep.Days, reportDay{
			Date:     d.Key,
			Hours:    d.Entry.Hours,
			LdcHours: d.Entry.LdcHours,
			Weather:  string(d.Entry.Weather),
			Status:   string(d.Entry.Status),
			Campaign: d.Entry.IsCampaign,
		})
		rep.TotalHours += d.Entry.Hours
		rep.LdcHours += d.Entry.LdcHours
	}
	for _, a := range aggregates {
		rep.BulkHours += a.Entry.Hours
	}

	switch reportFormat {
	case "csv":
		printReportCSV(rep)
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
	default: // md
		printReportMd(rep, aggregates)
	}
	return nil
}

func printReportMd(rep monthReport, aggregates []record.KeyedEntry) {
	fmt.Printf("Month %s\n", rep.Month)
	fmt.Println("--------------------------------")
	for _, d := range rep.Days {
		line := fmt.Sprintf("%-12s%s", d.Date, formatHours(d.Hours))
		if d.LdcHours > 0 {
			line += fmt.Sprintf("  +%s LDC", formatHours(d.LdcHours))
		}
		if d.Weather != "" {
			line += "  " + d.Weather
		}
		if d.Status != "" {
			line += "  [" + d.Status + "]"
		}
		if d.Campaign {
			line += "  (campaign)"
		}
		fmt.Println(line)
	}
	for _, a := range aggregates {
		kind := "summary"
		if dates.IsCarryoverKey(a.Key) {
			kind = "carryover"
		}
		fmt.Printf("%-12s%s  (%s, not in month total)\n", a.Key, formatHours(a.Entry.Hours), kind)
	}
	fmt.Println("--------------------------------")
	fmt.Printf("%-12s%s of %s\n", "Total", formatHours(rep.TotalHours), formatHours(rep.Goal))
	if rep.LdcHours > 0 {
		fmt.Printf("%-12s%s\n", "LDC", formatHours(rep.LdcHours))
	}
}

func printReportCSV(rep monthReport) {
	fmt.Println("date,hours,ldc_hours,weather,status,campaign")
	for _, d := range rep.Days {
		fmt.Printf("%s,%g,%g,%s,%s,%t\n",
			csvEscape(d.Date), d.Hours, d.LdcHours,
			csvEscape(d.Weather), csvEscape(d.Status), d.Campaign)
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}
