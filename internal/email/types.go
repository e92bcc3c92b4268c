package email

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
	HTML    bool
}

// Config holds SMTP connection settings.
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}
