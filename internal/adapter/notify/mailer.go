package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"

	mail "github.com/go-mail/mail/v2"
	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/config"
	"github.com/tarsojabbes/science/internal/domain"
)

type userLookup interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type sender interface {
	DialAndSend(m ...*mail.Message) error
}

// Mailer sends notifications over SMTP.
type Mailer struct {
	log    *slog.Logger
	users  userLookup
	sender sender
	from   string
}

// NewMailer creates an SMTP notifier from config. STARTTLS is mandatory.
func NewMailer(log *slog.Logger, cfg config.MailConfig, users userLookup) *Mailer {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         cfg.Host,
		InsecureSkipVerify: cfg.SkipTLSVerify, //nolint:gosec // opt-in for local relays
	}
	return newMailer(log, cfg.From, users, d)
}

func newMailer(log *slog.Logger, from string, users userLookup, s sender) *Mailer {
	return &Mailer{
		log:    log.With("notifier", "smtp"),
		users:  users,
		sender: s,
		from:   from,
	}
}

// ReviewAssigned sends one message to each assigned reviewer.
func (m *Mailer) ReviewAssigned(ctx context.Context, rv *domain.Review, paper *domain.Paper) error {
	users, err := m.recipients(ctx, rv.FirstReviewerID, rv.SecondReviewerID)
	if err != nil {
		return err
	}

	msgs := make([]*mail.Message, 0, len(users))
	for _, u := range users {
		msgs = append(msgs, m.message(u,
			"Review request: "+paper.Name,
			fmt.Sprintf("Hello %s,\n\nYou have been assigned to review the paper %s.\nReview ID: %s\n\nPlease submit your recommendation and score when ready.\n",
				u.Name, paperTitle(paper), rv.ID),
		))
	}
	return m.send(ctx, rv.ID, msgs)
}

// ReviewCompleted tells the requester the final decision.
func (m *Mailer) ReviewCompleted(ctx context.Context, rv *domain.Review, paper *domain.Paper) error {
	users, err := m.recipients(ctx, rv.RequesterID)
	if err != nil {
		return err
	}

	msgs := make([]*mail.Message, 0, len(users))
	for _, u := range users {
		msgs = append(msgs, m.message(u,
			"Review decision: "+paper.Name,
			fmt.Sprintf("Hello %s,\n\nThe review of %s is complete.\nFinal decision: %s\nReview ID: %s\n",
				u.Name, paperTitle(paper), decisionText(rv), rv.ID),
		))
	}
	return m.send(ctx, rv.ID, msgs)
}

func (m *Mailer) recipients(ctx context.Context, ids ...uuid.UUID) ([]domain.User, error) {
	users, err := m.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load recipients: %w", err)
	}
	if len(users) < len(ids) {
		m.log.WarnContext(ctx, "some recipients no longer exist",
			slog.Int("wanted", len(ids)), slog.Int("found", len(users)))
	}
	return users, nil
}

func (m *Mailer) message(to domain.User, subject, body string) *mail.Message {
	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetAddressHeader("To", to.Email, to.Name)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return msg
}

func (m *Mailer) send(ctx context.Context, reviewID uuid.UUID, msgs []*mail.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.sender.DialAndSend(msgs...); err != nil {
		return fmt.Errorf("send mail for review %s: %w", reviewID, err)
	}
	m.log.InfoContext(ctx, "notification sent",
		slog.String("review_id", reviewID.String()),
		slog.Int("messages", len(msgs)))
	return nil
}
