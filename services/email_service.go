package services

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"time"

	"github.com/ramazanbat/venue-booking/config"
)

// EmailService sends transactional mail over SMTP. It satisfies both
// OTPSender and BookingMailer.
type EmailService struct {
	cfg *config.Config
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{cfg: cfg}
}

func (s *EmailService) SendEmail(to []string, subject string, body string) error {
	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)

	msg := []byte("To: " + to[0] + "\r\n" +
		"From: " + s.cfg.SMTPFrom + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\r\n" +
		"\r\n" +
		body + "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	tlsconfig := &tls.Config{
		ServerName: s.cfg.SMTPHost,
	}

	var client *smtp.Client
	if s.cfg.SMTPPort == 465 {
		// Implicit TLS.
		conn, err := tls.Dial("tcp", addr, tlsconfig)
		if err != nil {
			return fmt.Errorf("smtp tls dial: %w", err)
		}
		defer conn.Close()
		client, err = smtp.NewClient(conn, s.cfg.SMTPHost)
		if err != nil {
			return fmt.Errorf("smtp client: %w", err)
		}
	} else {
		// STARTTLS, usually port 587.
		c, err := smtp.Dial(addr)
		if err != nil {
			return fmt.Errorf("smtp dial: %w", err)
		}
		client = c
		if err = client.StartTLS(tlsconfig); err != nil {
			client.Close()
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(s.cfg.SMTPFrom); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp rcpt to: %w", err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}

	return nil
}

func (s *EmailService) SendOTPEmail(userEmail, code string) error {
	subject := "Your verification code"
	body := fmt.Sprintf(
		`<div style="font-family: sans-serif;">
			<p>Use the following code to verify your account:</p>
			<p style="font-size: 28px; font-weight: bold; letter-spacing: 4px;">%s</p>
			<p>The code expires in 5 minutes. Do not share it with anyone.</p>
		</div>`, code)
	return s.SendEmail([]string{userEmail}, subject, body)
}

func (s *EmailService) SendBookingConfirmedEmail(userEmail, venueName, courtName string, startTime, endTime time.Time) error {
	subject := fmt.Sprintf("Booking confirmed at %s", venueName)
	body := fmt.Sprintf(
		`<div style="font-family: sans-serif;">
			<p>Your booking is confirmed.</p>
			<p><b>%s</b>, %s</p>
			<p>%s - %s</p>
		</div>`,
		venueName, courtName,
		startTime.Format("Mon, 2 Jan 2006 15:04"), endTime.Format("15:04"))
	return s.SendEmail([]string{userEmail}, subject, body)
}
