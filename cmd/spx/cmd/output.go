package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printSalesTable(w io.Writer, page *domain.SalePage) error {
	tw := newTabWriter(w)
	tw.writef("ID\tADDRESS\tSUBURB\tDATE\tPRICE\tBEDS\tOPPORTUNITIES\n")
	for i := range page.Sales {
		s := &page.Sales[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			s.ID,
			truncate(s.Address, 32),
			s.Suburb,
			formatDate(s.SaleDate),
			formatPrice(s.SalePrice),
			formatInt(s.Bedrooms),
			s.OpportunityCount,
		)
	}
	if page.HasMore {
		tw.writef("\n%d of %d shown, next page: --offset %d\n",
			page.Offset+len(page.Sales), page.Total, page.Offset+len(page.Sales))
	}
	return tw.finish()
}

func printSaleDetail(w io.Writer, s *domain.Sale) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", s.ID)
	tw.writef("Address:\t%s\n", s.Address)
	tw.writef("Suburb:\t%s\n", s.Suburb)
	tw.writef("Sold:\t%s\n", formatDate(s.SaleDate))
	tw.writef("Price:\t%s\n", formatPrice(s.SalePrice))
	tw.writef("Type:\t%s\n", s.PropertyType)
	tw.writef("Bedrooms:\t%s\n", formatInt(s.Bedrooms))
	tw.writef("Geocoded:\t%v\n", s.Geocoded())
	return tw.finish()
}

func printFeed(w io.Writer, f *domain.Feed) error {
	tw := newTabWriter(w)
	tw.writef("%s, %s (cooldown %d days)\n", f.Sale.Address, f.Sale.Suburb, f.CooldownDays)
	p := f.Progress
	tw.writef("Progress:\t%d/%d resolved, %d remaining, %d on cooldown, %d messages sent\n",
		p.Contacted+p.Ignored, p.Total, p.Remaining, p.OnCooldown, p.MessagesSent)

	sections := []struct {
		title string
		opps  []domain.Opportunity
	}{
		{"HOT", f.Groups.Hot},
		{"NEVER CONTACTED", f.Groups.NeverContacted},
		{"PREVIOUSLY CONTACTED", f.Groups.PreviouslyContacted},
		{"ON COOLDOWN", f.Groups.OnCooldown},
		{"CONTACTED", f.Groups.Contacted},
		{"IGNORED", f.Groups.Ignored},
	}
	for _, sec := range sections {
		if len(sec.opps) == 0 {
			continue
		}
		tw.writef("\n%s (%d)\n", sec.title, len(sec.opps))
		tw.writef("CONTACT ID\tNAME\tADDRESS\tDISTANCE\tLAST SMS\tSMS\n")
		for i := range sec.opps {
			o := &sec.opps[i]
			tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
				o.Contact.ID,
				o.Contact.FullName(),
				truncate(o.Contact.Address, 32),
				formatDistance(o),
				formatLastContact(o),
				yesNo(o.CanMessage),
			)
		}
	}
	return tw.finish()
}

func printFavorites(w io.Writer, favs []domain.SuburbFavorite) error {
	tw := newTabWriter(w)
	tw.writef("#\tSUBURB\n")
	for i := range favs {
		tw.writef("%d\t%s\n", favs[i].Position+1, favs[i].Suburb)
	}
	return tw.finish()
}

func printSuburbProgress(w io.Writer, rows []domain.SuburbProgress) error {
	tw := newTabWriter(w)
	tw.writef("SUBURB\tSALES\tCONTACTED\tIGNORED\tMESSAGES\n")
	for i := range rows {
		r := &rows[i]
		tw.writef("%s\t%d\t%d\t%d\t%d\n", r.Suburb, r.Sales, r.Contacted, r.Ignored, r.MessagesSent)
	}
	return tw.finish()
}

func printJobRunsTable(w io.Writer, runs []domain.JobRun) error {
	tw := newTabWriter(w)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			formatInt(r.RowsAffected),
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func formatDistance(o *domain.Opportunity) string {
	switch {
	case o.Distance != nil && *o.Distance >= 1000:
		return fmt.Sprintf("%.1f km", *o.Distance/1000)
	case o.Distance != nil:
		return fmt.Sprintf("%.0f m", *o.Distance)
	case o.SameStreet:
		return "same street"
	default:
		return "-"
	}
}

func formatLastContact(o *domain.Opportunity) string {
	switch {
	case o.NeverContacted:
		return "never"
	case o.IsOnCooldown && o.CooldownDaysRemaining != nil:
		return fmt.Sprintf("cooldown, %dd left", *o.CooldownDaysRemaining)
	case o.DaysSinceContact != nil:
		return fmt.Sprintf("%dd ago", *o.DaysSinceContact)
	default:
		return "-"
	}
}

func formatPrice(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("$%.0f", *p)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.DateOnly)
}

func formatInt(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *n)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
