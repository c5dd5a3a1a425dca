package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/fatflowers/marketlink/internal/app/service/listener"
	"github.com/fatflowers/marketlink/internal/platform/marketpay"
	"github.com/fatflowers/marketlink/internal/platform/mirakl"
	cfgpkg "github.com/fatflowers/marketlink/pkg/config"
	"go.uber.org/zap"
	gomail "gopkg.in/mail.v2"
)

// Service renders templated seller emails and fixed-format operator alerts
// and delivers them over SMTP. Sends are synchronous and fallible from the
// caller's point of view.
type Service struct {
	cfg *cfgpkg.Config
	log *zap.SugaredLogger
}

func New(cfg *cfgpkg.Config, log *zap.SugaredLogger) *Service {
	return &Service{cfg: cfg, log: log}
}

type templateData struct {
	ShopID    string
	ShopName  string
	FirstName string
	LastName  string
	Locale    string
}

func (s *Service) SendShopEmail(ctx context.Context, shop *mirakl.Shop, locale, templateKey, subjectKey string) error {
	if shop.Contact.Locale != "" {
		locale = shop.Contact.Locale
	}
	body, err := s.render(templateKey, templateData{
		ShopID:    shop.ID,
		ShopName:  shop.Name,
		FirstName: shop.Contact.FirstName,
		LastName:  shop.Contact.LastName,
		Locale:    locale,
	})
	if err != nil {
		return err
	}
	return s.deliver(shop.Contact.Email, subjectFor(subjectKey), body)
}

func (s *Service) SendNamedEmail(ctx context.Context, name marketpay.Name, shopID, locale, templateKey, subjectKey, email string) error {
	body, err := s.render(templateKey, templateData{
		ShopID:    shopID,
		FirstName: name.FirstName,
		LastName:  name.LastName,
		Locale:    locale,
	})
	if err != nil {
		return err
	}
	return s.deliver(email, subjectFor(subjectKey), body)
}

func (s *Service) SendOperatorPayoutFailure(ctx context.Context, shop *mirakl.Shop, message string) error {
	body := fmt.Sprintf("Payout failed for shop %s (%s).\n\nPlatform message: %s\n", shop.ID, shop.Name, message)
	return s.deliver(s.cfg.Mirakl.OperatorEmail, "Seller payout failed", body)
}

func (s *Service) SendOperatorTransferFundsFailure(ctx context.Context, sourceHolderCode, destinationHolderCode string, amount marketpay.Amount, transferCode, message string) error {
	body := fmt.Sprintf(
		"Fund transfer %s failed.\n\nSource account holder: %s\nDestination account holder: %s\nAmount: %d %s\n\nPlatform message: %s\n",
		transferCode, sourceHolderCode, destinationHolderCode, amount.Value, amount.Currency, message)
	return s.deliver(s.cfg.Mirakl.OperatorEmail, "Fund transfer failed", body)
}

func (s *Service) SendOperatorManualDocumentFailure(ctx context.Context, accountCode string, amount marketpay.Amount, reference string, errs []mirakl.ManualDocumentError) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Manual credit document creation failed.\n\nAccount code: %s\nAmount: %d %s\nProcessor reference: %s\n\nErrors:\n",
		accountCode, amount.Value, amount.Currency, reference)
	for _, e := range errs {
		fmt.Fprintf(&b, "- [%s] %s\n", e.Code, e.Message)
	}
	return s.deliver(s.cfg.Mirakl.OperatorEmail, "Manual credit document failed", b.String())
}

// render loads "<templateKey>.html" from the configured template directory
// and executes it. A missing template is an error, not a silent fallback.
func (s *Service) render(templateKey string, data templateData) (string, error) {
	path := filepath.Join(s.cfg.SMTP.TemplateDir, templateKey+".html")
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return "", fmt.Errorf("failed to load email template %s: %w", templateKey, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template %s: %w", templateKey, err)
	}
	return buf.String(), nil
}

func (s *Service) deliver(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.cfg.SMTP.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(s.cfg.SMTP.Host, s.cfg.SMTP.Port, s.cfg.SMTP.Username, s.cfg.SMTP.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	s.log.Infow("email sent", "to", to, "subject", subject)
	return nil
}

var _ listener.EmailGateway = (*Service)(nil)
