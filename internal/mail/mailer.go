package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"workspace-portal/config"
)

type Mailer struct{}

func NewMailer() *Mailer {
	return &Mailer{}
}

// SendInvitation mails the accept link. Without SMTP configured the link
// is logged instead, which is enough for local development.
func (m *Mailer) SendInvitation(to string, token string) error {
	link := fmt.Sprintf("%s/invite/%s", config.APP_URL, token)

	if config.SMTP_HOST == "" {
		log.Printf("SMTP not configured; invitation link for %s: %s", to, link)
		return nil
	}

	auth := smtp.PlainAuth("", config.SMTP_FROM, config.SMTP_PASSWORD, config.SMTP_HOST)

	subject := "You have been invited to the workspace"
	body := fmt.Sprintf("You have been invited to join the workspace.\n\nAccept the invitation here:\n\n%s", link)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + config.SMTP_FROM + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	err := smtp.SendMail(config.SMTP_HOST+":"+config.SMTP_PORT, auth, config.SMTP_FROM, []string{to}, message)
	if err != nil {
		log.Println("SMTP error:", err)
	}
	return err
}
