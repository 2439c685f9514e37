package gcalendar

import "time"

// CreateReminderRequest is the input for creating a calendar reminder event
// from a confirmed voice task.
type CreateReminderRequest struct {
	CalendarID  string
	Summary     string
	Description string

	// Start of the reminder. When AllDay is set only the date portion is
	// used and the event spans the whole day.
	StartTime time.Time
	EndTime   time.Time
	AllDay    bool

	// PopupMinutes configures a popup notification this many minutes before
	// the event. Zero disables the override and keeps the calendar default.
	PopupMinutes int64

	Timezone string // IANA name, e.g. "Europe/Berlin"
}

// Reminder is a simplified representation of the created calendar event.
type Reminder struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}
