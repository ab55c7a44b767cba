package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewSendGridEmailService sends notifications through the SendGrid API.
func NewSendGridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) SendBookingRequested(ctx context.Context, ownerEmail, ownerName, bookerName, itemName string) error {
	subject := fmt.Sprintf("New booking request for %s", itemName)
	body := fmt.Sprintf("Hello %s,\n\n%s requested to book your item %s. Approve or reject the booking in ShareIt.\n\nBest regards,\nThe ShareIt Team", ownerName, bookerName, itemName)
	return s.send(ownerEmail, ownerName, subject, body)
}

func (s *sendGridEmailService) SendBookingDecision(ctx context.Context, bookerEmail, bookerName, itemName string, approved bool) error {
	decision := "rejected"
	if approved {
		decision = "approved"
	}
	subject := fmt.Sprintf("Your booking of %s was %s", itemName, decision)
	body := fmt.Sprintf("Hello %s,\n\nThe owner has %s your booking of %s.\n\nBest regards,\nThe ShareIt Team", bookerName, decision, itemName)
	return s.send(bookerEmail, bookerName, subject, body)
}

func (s *sendGridEmailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

type noopEmailService struct{}

// NewNoopEmailService is used when no SendGrid API key is configured.
func NewNoopEmailService() EmailService {
	return noopEmailService{}
}

func (noopEmailService) SendBookingRequested(ctx context.Context, ownerEmail, ownerName, bookerName, itemName string) error {
	return nil
}

func (noopEmailService) SendBookingDecision(ctx context.Context, bookerEmail, bookerName, itemName string, approved bool) error {
	return nil
}
