package email

import (
	"context"
	"fmt"
	"net/smtp"
	"sort"
	"strings"

	"compliance-backend/pkg/logger"
)

// LeadNotificationData carries one submitted lead into the sales inbox email.
type LeadNotificationData struct {
	LeadID string
	Email  string
	Source string
	Name   string
	Phone  string
	Extra  map[string]interface{}
}

// LeadDigestData summarizes the previous day's leads per source.
type LeadDigestData struct {
	Date           string // YYYY-MM-DD
	Total          int
	CountsBySource map[string]int
}

type EmailService interface {
	SendLeadNotification(ctx context.Context, to string, data LeadNotificationData) error
	SendLeadDigest(ctx context.Context, to string, data LeadDigestData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPEmailService(smtpHost, smtpPort, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendLeadNotification(ctx context.Context, to string, data LeadNotificationData) error {
	subject := fmt.Sprintf("New lead from %s", data.Source)

	var b strings.Builder
	fmt.Fprintf(&b, "A new lead was captured.\n\n")
	fmt.Fprintf(&b, "Email:  %s\n", data.Email)
	fmt.Fprintf(&b, "Source: %s\n", data.Source)
	if data.Name != "" {
		fmt.Fprintf(&b, "Name:   %s\n", data.Name)
	}
	if data.Phone != "" {
		fmt.Fprintf(&b, "Phone:  %s\n", data.Phone)
	}
	if len(data.Extra) > 0 {
		fmt.Fprintf(&b, "\nAdditional fields:\n")
		keys := make([]string, 0, len(data.Extra))
		for k := range data.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "  %s: %v\n", k, data.Extra[k])
		}
	}
	fmt.Fprintf(&b, "\nLead ID: %s\n", data.LeadID)

	return s.send(to, subject, b.String())
}

func (s *smtpEmailService) SendLeadDigest(ctx context.Context, to string, data LeadDigestData) error {
	subject := fmt.Sprintf("Lead digest for %s (%d total)", data.Date, data.Total)

	var b strings.Builder
	fmt.Fprintf(&b, "Leads captured on %s: %d\n\n", data.Date, data.Total)
	sources := make([]string, 0, len(data.CountsBySource))
	for src := range data.CountsBySource {
		sources = append(sources, src)
	}
	sort.Strings(sources)
	for _, src := range sources {
		fmt.Fprintf(&b, "  %-24s %d\n", src, data.CountsBySource[src])
	}

	return s.send(to, subject, b.String())
}

func (s *smtpEmailService) send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, to, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{to}, msg); err != nil {
		logger.Info("Failed to send email", map[string]interface{}{
			"error":     err.Error(),
			"to":        to,
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
