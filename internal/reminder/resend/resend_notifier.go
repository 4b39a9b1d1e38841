package resend

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"
)

type ResendNotifier struct {
	ApiKey string
	Email  string
}

const nudgeTemplate = `
<p>These habit streaks will break unless you complete them today:</p>
<ul>
{{range .Habits}}
  <li>{{.}}</li>
{{end}}
</ul>
`

func (r *ResendNotifier) SendActivityReminder(name, startTime string) error {
	client := resend.NewClient(r.ApiKey)
	params := &resend.SendEmailRequest{
		From:    "onboarding@resend.dev",
		To:      []string{r.Email},
		Subject: fmt.Sprintf("%s starts at %s", name, startTime),
		Html:    fmt.Sprintf("<p><strong>%s</strong> is starting now (%s).</p>", template.HTMLEscapeString(name), startTime),
	}
	_, err := client.Emails.Send(params)
	return err
}

func (r *ResendNotifier) SendStreakNudge(habits []string) error {
	tmpl, err := template.New("nudge").Parse(nudgeTemplate)
	if err != nil {
		return err
	}

	data := struct{ Habits []string }{Habits: habits}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}

	client := resend.NewClient(r.ApiKey)
	params := &resend.SendEmailRequest{
		From:    "onboarding@resend.dev",
		To:      []string{r.Email},
		Subject: "Habit streaks are expiring today",
		Html:    buf.String(),
	}
	_, err = client.Emails.Send(params)
	return err
}
