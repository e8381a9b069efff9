package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template (+Data) or Subject with Text/HTML is set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "welcome"
	Data     map[string]any `json:"data,omitempty"`
}

// Resolve renders the job's template when one is set, and returns the final
// subject, text and html bodies.
func (j EmailJob) Resolve(render func(name string, data any) (string, string, string, error)) (string, string, string, error) {
	if j.Template == "" {
		return j.Subject, j.Text, j.HTML, nil
	}
	data := j.Data
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Email"]; !ok {
		data["Email"] = j.To
	}
	return render(j.Template, data)
}
