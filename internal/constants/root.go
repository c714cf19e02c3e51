package constants

const (
	AppName            = "daygrid"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/daygrid/daygrid.db"
	Version            = "v0.2.0"

	// DateFormat is the standard calendar-day format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"
	// TimeFormat is the standard time-of-day format used throughout the application (HH:MM, 24h)
	TimeFormat = "15:04"
	// TimestampFormat is the fixed-width record timestamp format. The millisecond
	// field is zero-padded so lexicographic comparison matches chronological order.
	TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

	// DefaultMode is the life-area tag new sessions start in.
	DefaultMode = "Personal"
)
