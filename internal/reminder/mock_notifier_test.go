package reminder

type mockNotifier struct {
	activityCalls []string
	nudgeHabits   []string
	nudgeCalls    int
	err           error
}

func (m *mockNotifier) SendActivityReminder(name, startTime string) error {
	m.activityCalls = append(m.activityCalls, name)
	return m.err
}

func (m *mockNotifier) SendStreakNudge(habits []string) error {
	m.nudgeCalls++
	m.nudgeHabits = habits
	return m.err
}
