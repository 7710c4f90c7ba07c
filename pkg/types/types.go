// Package domain defines the core business types for the sale prospector.
package domain

import (
	"strings"
	"time"
)

// SalePageSize is the fixed page size for sale listing queries.
const SalePageSize = 20

// MaxFavorites is the maximum number of pinned suburbs per user.
const MaxFavorites = 5

// DefaultCooldownDays is the cooldown window used when nothing is configured.
const DefaultCooldownDays = 7

// ActionStatus is the explicit decision an agent has made for a (sale, contact) pair.
type ActionStatus string

// Action status constants.
const (
	ActionNone      ActionStatus = "none"
	ActionContacted ActionStatus = "contacted"
	ActionIgnored   ActionStatus = "ignored"
)

// Recordable reports whether the status can be persisted as a SaleContactAction.
func (a ActionStatus) Recordable() bool {
	return a == ActionContacted || a == ActionIgnored
}

// Sale is a recorded property transaction.
type Sale struct {
	ID           string     `json:"id"                       db:"id"`
	Address      string     `json:"address"                  db:"address"`
	Suburb       string     `json:"suburb"                   db:"suburb"`
	City         string     `json:"city,omitempty"           db:"city"`
	SalePrice    *float64   `json:"sale_price,omitempty"     db:"sale_price"`
	SaleDate     *time.Time `json:"sale_date,omitempty"      db:"sale_date"`
	PropertyType string     `json:"property_type,omitempty"  db:"property_type"`
	Bedrooms     *int       `json:"bedrooms,omitempty"       db:"bedrooms"`
	StreetName   string     `json:"street_name"              db:"street_name"`
	StreetNumber string     `json:"street_number,omitempty"  db:"street_number"`
	Latitude     *float64   `json:"latitude,omitempty"       db:"latitude"`
	Longitude    *float64   `json:"longitude,omitempty"      db:"longitude"`
	CreatedAt    time.Time  `json:"created_at"               db:"created_at"`
}

// Geocoded reports whether both coordinates are present.
func (s *Sale) Geocoded() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// SaleSummary is a sale row with its cheap opportunity count for list views.
type SaleSummary struct {
	Sale
	OpportunityCount int `json:"opportunity_count"`
}

// SalePage is one fixed-size page of a filtered sale listing.
type SalePage struct {
	Sales   []SaleSummary `json:"sales"`
	Total   int           `json:"total"`
	Offset  int           `json:"offset"`
	HasMore bool          `json:"has_more"`
}

// Contact is a person the agent may message.
type Contact struct {
	ID            string     `json:"id"                    db:"id"`
	FirstName     string     `json:"first_name"            db:"first_name"`
	LastName      string     `json:"last_name,omitempty"   db:"last_name"`
	Phone         *string    `json:"phone,omitempty"       db:"phone"`
	Address       string     `json:"address"               db:"address"`
	AddressSuburb string     `json:"address_suburb"        db:"address_suburb"`
	Latitude      *float64   `json:"latitude,omitempty"    db:"latitude"`
	Longitude     *float64   `json:"longitude,omitempty"   db:"longitude"`
	LastSMSAt     *time.Time `json:"last_sms_at,omitempty" db:"last_sms_at"`
}

// Geocoded reports whether both coordinates are present.
func (c *Contact) Geocoded() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// CanMessage reports whether the contact has a usable phone number.
func (c *Contact) CanMessage() bool {
	return c.Phone != nil && strings.TrimSpace(*c.Phone) != ""
}

// FullName joins first and last name.
func (c *Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Opportunity is a computed (Sale, Contact) pairing. It is never persisted.
type Opportunity struct {
	SaleID                string       `json:"sale_id"`
	Contact               Contact      `json:"contact"`
	Distance              *float64     `json:"distance,omitempty"` // meters
	SameStreet            bool         `json:"same_street"`
	DaysSinceContact      *int         `json:"days_since_contact,omitempty"`
	NeverContacted        bool         `json:"never_contacted"`
	IsOnCooldown          bool         `json:"is_on_cooldown"`
	CooldownDaysRemaining *int         `json:"cooldown_days_remaining,omitempty"`
	ActionStatus          ActionStatus `json:"action_status"`
	CanMessage            bool         `json:"can_message"`
}

// SaleContactAction is the persisted decision for a (sale, contact) pair.
type SaleContactAction struct {
	SaleID    string       `json:"sale_id"    db:"sale_id"`
	ContactID string       `json:"contact_id" db:"contact_id"`
	Action    ActionStatus `json:"action"     db:"action"`
	UserID    string       `json:"user_id"    db:"user_id"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}

// SuburbFavorite is a suburb a user has pinned for prospecting.
type SuburbFavorite struct {
	UserID    string    `json:"user_id"    db:"user_id"`
	Suburb    string    `json:"suburb"     db:"suburb"`
	Position  int       `json:"position"   db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SMSLogEntry records a message sent to a contact about a sale.
type SMSLogEntry struct {
	ID        string    `json:"id"                db:"id"`
	SaleID    string    `json:"sale_id"           db:"sale_id"`
	ContactID string    `json:"contact_id"        db:"contact_id"`
	UserID    string    `json:"user_id"           db:"user_id"`
	Message   string    `json:"message,omitempty" db:"message"`
	SentAt    time.Time `json:"sent_at"           db:"sent_at"`
}

// FeedGroups partitions a sale's opportunities in display order.
type FeedGroups struct {
	Hot                 []Opportunity `json:"hot"`
	NeverContacted      []Opportunity `json:"never_contacted"`
	PreviouslyContacted []Opportunity `json:"previously_contacted"`
	OnCooldown          []Opportunity `json:"on_cooldown"`
	Contacted           []Opportunity `json:"contacted"`
	Ignored             []Opportunity `json:"ignored"`
}

// SaleProgress holds the per-sale counters used for progress bars.
type SaleProgress struct {
	Total        int  `json:"total"`
	Contacted    int  `json:"contacted"`
	Ignored      int  `json:"ignored"`
	OnCooldown   int  `json:"on_cooldown"`
	Remaining    int  `json:"remaining"`
	MessagesSent int  `json:"messages_sent"`
	Complete     bool `json:"complete"`
}

// SuburbProgress aggregates action counters across all sales in a suburb.
type SuburbProgress struct {
	Suburb       string `json:"suburb"        db:"suburb"`
	Sales        int    `json:"sales"         db:"sales"`
	Contacted    int    `json:"contacted"     db:"contacted"`
	Ignored      int    `json:"ignored"       db:"ignored"`
	MessagesSent int    `json:"messages_sent" db:"messages_sent"`
}

// Feed is the UI-facing view of one sale.
type Feed struct {
	Sale         Sale         `json:"sale"`
	CooldownDays int          `json:"cooldown_days"`
	Groups       FeedGroups   `json:"groups"`
	Progress     SaleProgress `json:"progress"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// NormalizeSuburb lower-cases and trims a suburb for comparisons.
func NormalizeSuburb(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
