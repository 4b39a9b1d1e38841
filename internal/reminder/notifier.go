package reminder

// Notifier delivers reminders. The resend subpackage provides the real
// implementation; tests swap in a mock.
type Notifier interface {
	// SendActivityReminder fires when a scheduled activity is starting.
	SendActivityReminder(name, startTime string) error
	// SendStreakNudge fires once a day with the habits whose streaks will
	// break unless they are completed today.
	SendStreakNudge(habits []string) error
}
