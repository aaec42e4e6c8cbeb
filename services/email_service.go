package services

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/mega-automotives/mega_backend/models"
)

// EmailService sends transactional mail over SMTP. The dialer configuration is
// read once at startup; delivery failures are the caller's to log, never to
// propagate into the triggering operation.
type EmailService struct {
	host      string
	port      int
	user      string
	pass      string
	from      string
	originURL string
}

// NewEmailService creates a new email service instance from the SMTP
// environment variables.
func NewEmailService() *EmailService {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	fromEmail := os.Getenv("FROM_EMAIL")
	if fromEmail == "" {
		fromEmail = smtpUser
	}

	smtpPort := 2525
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		if portNum, err := strconv.Atoi(portStr); err == nil && portNum > 0 {
			smtpPort = portNum
		}
	}

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		log.Println("SMTP configuration is incomplete: check SMTP_HOST, SMTP_USER, SMTP_PASS, and FROM_EMAIL")
	}

	return &EmailService{
		host:      smtpHost,
		port:      smtpPort,
		user:      smtpUser,
		pass:      smtpPass,
		from:      fromEmail,
		originURL: os.Getenv("ORIGIN_URL"),
	}
}

// SendEmail attempts delivery of one HTML mail.
func (s *EmailService) SendEmail(to, subject, html string) error {
	if s.host == "" || s.user == "" || s.pass == "" {
		return fmt.Errorf("SMTP configuration is incomplete")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(s.host, s.port, s.user, s.pass)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendNewBookingMail confirms a freshly placed booking to its owner.
func (s *EmailService) SendNewBookingMail(user *models.User, booking *models.Booking) error {
	kind := models.ExternalKind(booking.AssignedToModel)
	subject := fmt.Sprintf("Your Vehicle %s has been booked", kind)
	return s.SendEmail(user.Email, subject, s.newBookingBody(user.Name.FirstName, kind, booking.ID.Hex()))
}

func (s *EmailService) newBookingBody(firstName, kind, bookingID string) string {
	return fmt.Sprintf(`<h3>Hello, %s</h3>
		<br/>
		Thank you for booking with Mega-Automotives.
		<br/>
		Your vehicle %s has been booked successfully.
		You will receive a notification from us via your account and mail
		once the booking has been confirmed.
		<br/><br/>
		<a href="%s/bookings/%s">Check Booking</a>
		<br/><br/>
		Please note that your booking can only be cancelled
		prior to the drop-off/pick-up of the vehicle.
		<br/><br/>
		Warm Regards,
		<br/>
		Mega-Automotives Team.`,
		firstName, kind, s.originURL, bookingID)
}

// SendBookingStatusMail summarizes a status transition to the booking's owner.
func (s *EmailService) SendBookingStatusMail(owner *models.User, booking *models.Booking) error {
	kind := models.ExternalKind(booking.AssignedToModel)
	subject := fmt.Sprintf("Your Vehicle %s booking is now %s", kind, booking.Status)
	return s.SendEmail(owner.Email, subject, s.bookingStatusBody(owner.Name.FirstName, kind, booking))
}

func (s *EmailService) bookingStatusBody(firstName, kind string, booking *models.Booking) string {
	summary := booking.Status
	if booking.Message != "" {
		summary = booking.Status + ". " + booking.Message
	}
	return fmt.Sprintf(`<h3>Dear %s,</h3>
		<br/>
		Thank you for booking with Mega-Automotives.
		<br/>
		Your vehicle %s booking record is now %s
		<br/><br/>
		<a href="%s/bookings/%s">Check Booking</a>
		<br/><br/>
		Please note that your booking can only be cancelled
		prior to the drop-off/pick-up of the vehicle.
		<br/><br/>
		Warm Regards,
		<br/>
		Mega-Automotives Team.`,
		firstName, kind, summary, s.originURL, booking.ID.Hex())
}

// SendPaymentVerificationMail confirms a recorded payment. The address comes
// from the gateway's verification payload, which is the source of truth for
// the transaction, not the locally stored account email.
func (s *EmailService) SendPaymentVerificationMail(email string, payment *models.Payment) error {
	kind := models.ExternalKind(payment.AssignedToModel)
	subject := fmt.Sprintf("%s order payment %s", kind, payment.Status)
	body := fmt.Sprintf(`<h3>Dear valued user,</h3>
		<br/>
		Thank you for placing your order with Mega-Automotives.
		<br/>
		Your %s order payment was successful.
		<br/><br/>
		<a href="%s/payments">View Payment</a>
		<br/><br/>
		Please note that your payment can only be cancelled
		prior to the pick-up of the order.
		<br/><br/>
		Warm Regards,
		<br/>
		Mega-Automotives Team.`,
		kind, s.originURL)
	return s.SendEmail(email, subject, body)
}

// SendPaymentStatusMail summarizes an administrative payment status change to
// the payer.
func (s *EmailService) SendPaymentStatusMail(user *models.User, payment *models.Payment) error {
	kind := models.ExternalKind(payment.AssignedToModel)
	subject := fmt.Sprintf("%s order payment %s", kind, payment.Status)
	body := fmt.Sprintf(`<h3>Dear %s,</h3>
		<br/>
		Your %s order payment with reference %s is now %s.
		<br/><br/>
		<a href="%s/payments">View Payment</a>
		<br/><br/>
		Warm Regards,
		<br/>
		Mega-Automotives Team.`,
		user.Name.FirstName, kind, payment.Reference, payment.Status, s.originURL)
	return s.SendEmail(user.Email, subject, body)
}
