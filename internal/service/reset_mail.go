// Package service holds the domain logic that doesn't belong in a
// request handler
package service

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// Mailer is the outbound mail collaborator. The SMTP implementation is
// the only real one, tests swap in a fake to observe deliveries and to
// force failures.
type Mailer interface {
	SendResetPasswordMail(to, resetURL string) error
}

type SMTPMailer struct{}

func (SMTPMailer) SendResetPasswordMail(to, resetURL string) error {
	from := viper.GetString("mail.sender")
	if to == from {
		return errors.New("invalid email address")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Password Reset Request")
	m.SetBody("text/html", fmt.Sprintf(`
		<h1>Password Reset Request</h1>
		<p>You are receiving this email because you (or someone else) has requested the reset of a password.</p>
		<p>Please click on the following link to reset your password:</p>
		<a href="%[1]v">%[1]v</a>
		<p>If you did not request this, please ignore this email and your password will remain unchanged.</p>`,
		resetURL))

	d := gomail.NewDialer(
		viper.GetString("mail.host"),
		viper.GetInt("mail.port"),
		from,
		viper.GetString("mail.password"),
	)

	return d.DialAndSend(m)
}
