package listener

import (
	"context"
	"fmt"

	"github.com/fatflowers/marketlink/internal/platform/marketpay"
	"github.com/samber/lo"
)

// handleVerification reacts to a KYC check outcome. Branches are evaluated
// in strict priority order; the bank-account retry-limit branch must come
// before the generic awaiting/invalid checks or it could never fire.
func (l *Listener) handleVerification(ctx context.Context, n *marketpay.VerificationNotification) error {
	status := n.Content.VerificationStatus
	checkType := n.Content.VerificationType
	shopID := n.Content.AccountHolderCode

	switch {
	case status == marketpay.CheckStatusRetryLimitReached && checkType == marketpay.CheckTypeBankAccountVerification:
		shop, err := l.getShop(ctx, shopID)
		if err != nil {
			return err
		}
		return l.mail.SendShopEmail(ctx, shop, defaultLocale, templateBankVerification, subjectBankVerification)

	case awaitingDataForIdentityOrPassport(status, checkType) || invalidDataForIdentityOrPassport(status, checkType):
		holder, err := l.accounts.GetByHolderCode(ctx, shopID)
		if err != nil {
			return err
		}
		switch holder.LegalEntity {
		case marketpay.LegalEntityBusiness:
			return l.sendShareholderVerificationEmail(ctx, n, holder)
		case marketpay.LegalEntityIndividual:
			return l.sendIndividualVerificationEmail(ctx, n, holder)
		}
		return nil

	case invalidOrAwaitingCompanyData(status, checkType):
		shop, err := l.getShop(ctx, shopID)
		if err != nil {
			return err
		}
		ts, err := resolveTemplateAndSubject(checkType, status)
		if err != nil {
			return err
		}
		return l.mail.SendShopEmail(ctx, shop, defaultLocale, ts.Template, ts.Subject)

	case passedForIdentityOrPassport(status, checkType):
		holder, err := l.accounts.GetByHolderCode(ctx, shopID)
		if err != nil {
			return err
		}
		switch holder.LegalEntity {
		case marketpay.LegalEntityBusiness:
			return l.docs.RemoveShareholderMedia(ctx, n.Content.ShareholderCode)
		case marketpay.LegalEntityIndividual:
			return l.docs.RemoveIndividualMedia(ctx, shopID)
		}
		return nil

	case status == marketpay.CheckStatusPassed && checkType == marketpay.CheckTypeBankAccountVerification:
		return l.docs.RemoveBankProofMedia(ctx, shopID)
	}

	// Other type/status combinations need no reaction.
	return nil
}

func (l *Listener) sendShareholderVerificationEmail(ctx context.Context, n *marketpay.VerificationNotification, holder *marketpay.AccountHolder) error {
	shareholderCode := n.Content.ShareholderCode
	shareholder, found := lo.Find(holder.Shareholders, func(s marketpay.ShareholderContact) bool {
		return s.ShareholderCode == shareholderCode
	})
	if !found {
		return fmt.Errorf("%w: unable to find shareholder %s on holder %s", ErrDataInconsistency, shareholderCode, holder.AccountHolderCode)
	}

	ts, err := resolveTemplateAndSubject(n.Content.VerificationType, n.Content.VerificationStatus)
	if err != nil {
		return err
	}
	return l.mail.SendNamedEmail(ctx, shareholder.Name, n.Content.AccountHolderCode, defaultLocale, ts.Template, ts.Subject, shareholder.Email)
}

func (l *Listener) sendIndividualVerificationEmail(ctx context.Context, n *marketpay.VerificationNotification, holder *marketpay.AccountHolder) error {
	ts, err := resolveTemplateAndSubject(n.Content.VerificationType, n.Content.VerificationStatus)
	if err != nil {
		return err
	}
	return l.mail.SendNamedEmail(ctx, holder.IndividualName, n.Content.AccountHolderCode, defaultLocale, ts.Template, ts.Subject, holder.Email)
}
