package listener

import (
	"context"

	"github.com/fatflowers/marketlink/internal/models"
	"github.com/fatflowers/marketlink/internal/platform/marketpay"
	"github.com/fatflowers/marketlink/internal/platform/mirakl"
	"go.uber.org/zap"
)

type fakeStore struct {
	rows    map[string]*models.PendingNotification
	deleted []string
	findErr error
}

func (f *fakeStore) FindByID(ctx context.Context, id string) (*models.PendingNotification, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.rows[id], nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAccounts struct {
	byHolderCode  map[string]*marketpay.AccountHolder
	byAccountCode map[string]*marketpay.AccountHolder
	err           error
	holderCalls   []string
	accountCalls  []string
}

func (f *fakeAccounts) GetByHolderCode(ctx context.Context, code string) (*marketpay.AccountHolder, error) {
	f.holderCalls = append(f.holderCalls, code)
	if f.err != nil {
		return nil, f.err
	}
	if h, ok := f.byHolderCode[code]; ok {
		return h, nil
	}
	return nil, marketpay.ErrAccountHolderNotFound
}

func (f *fakeAccounts) GetByAccountCode(ctx context.Context, code string) (*marketpay.AccountHolder, error) {
	f.accountCalls = append(f.accountCalls, code)
	if f.err != nil {
		return nil, f.err
	}
	if h, ok := f.byAccountCode[code]; ok {
		return h, nil
	}
	return nil, marketpay.ErrAccountHolderNotFound
}

type fakeShops struct {
	shops map[string]mirakl.Shop
	err   error
	calls [][]string
}

func (f *fakeShops) GetShopsByIDs(ctx context.Context, ids []string) ([]mirakl.Shop, error) {
	f.calls = append(f.calls, ids)
	if f.err != nil {
		return nil, f.err
	}
	var out []mirakl.Shop
	for _, id := range ids {
		if s, ok := f.shops[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

type sentShopEmail struct {
	ShopID   string
	Locale   string
	Template string
	Subject  string
}

type sentNamedEmail struct {
	Name     marketpay.Name
	ShopID   string
	Template string
	Subject  string
	Email    string
}

type sentTransferFailure struct {
	Source       string
	Destination  string
	Amount       marketpay.Amount
	TransferCode string
	Message      string
}

type sentManualDocFailure struct {
	AccountCode string
	Amount      marketpay.Amount
	Reference   string
	Errors      []mirakl.ManualDocumentError
}

type fakeMail struct {
	err            error
	shopEmails     []sentShopEmail
	namedEmails    []sentNamedEmail
	payoutFailures []string
	transferFails  []sentTransferFailure
	manualDocFails []sentManualDocFailure
}

func (f *fakeMail) SendShopEmail(ctx context.Context, shop *mirakl.Shop, locale, templateKey, subjectKey string) error {
	if f.err != nil {
		return f.err
	}
	f.shopEmails = append(f.shopEmails, sentShopEmail{ShopID: shop.ID, Locale: locale, Template: templateKey, Subject: subjectKey})
	return nil
}

func (f *fakeMail) SendNamedEmail(ctx context.Context, name marketpay.Name, shopID, locale, templateKey, subjectKey, email string) error {
	if f.err != nil {
		return f.err
	}
	f.namedEmails = append(f.namedEmails, sentNamedEmail{Name: name, ShopID: shopID, Template: templateKey, Subject: subjectKey, Email: email})
	return nil
}

func (f *fakeMail) SendOperatorPayoutFailure(ctx context.Context, shop *mirakl.Shop, message string) error {
	if f.err != nil {
		return f.err
	}
	f.payoutFailures = append(f.payoutFailures, shop.ID+"|"+message)
	return nil
}

func (f *fakeMail) SendOperatorTransferFundsFailure(ctx context.Context, source, destination string, amount marketpay.Amount, transferCode, message string) error {
	if f.err != nil {
		return f.err
	}
	f.transferFails = append(f.transferFails, sentTransferFailure{Source: source, Destination: destination, Amount: amount, TransferCode: transferCode, Message: message})
	return nil
}

func (f *fakeMail) SendOperatorManualDocumentFailure(ctx context.Context, accountCode string, amount marketpay.Amount, reference string, errs []mirakl.ManualDocumentError) error {
	if f.err != nil {
		return f.err
	}
	f.manualDocFails = append(f.manualDocFails, sentManualDocFailure{AccountCode: accountCode, Amount: amount, Reference: reference, Errors: errs})
	return nil
}

type fakeRetry struct {
	err   error
	calls []string
}

func (f *fakeRetry) RetryFailedPayouts(ctx context.Context, holderCode string) error {
	f.calls = append(f.calls, holderCode)
	return f.err
}

type fakeDocs struct {
	err         error
	shareholder []string
	individual  []string
	bankProof   []string
}

func (f *fakeDocs) RemoveShareholderMedia(ctx context.Context, shareholderCode string) error {
	if f.err != nil {
		return f.err
	}
	f.shareholder = append(f.shareholder, shareholderCode)
	return nil
}

func (f *fakeDocs) RemoveIndividualMedia(ctx context.Context, holderCode string) error {
	if f.err != nil {
		return f.err
	}
	f.individual = append(f.individual, holderCode)
	return nil
}

func (f *fakeDocs) RemoveBankProofMedia(ctx context.Context, holderCode string) error {
	if f.err != nil {
		return f.err
	}
	f.bankProof = append(f.bankProof, holderCode)
	return nil
}

type fakeCompensation struct {
	results map[string]*mirakl.CreatedManualDocuments
	errs    map[string]error
	calls   []string
}

func (f *fakeCompensation) ProcessRecord(ctx context.Context, record marketpay.CompensationRecord, reference string) (*mirakl.CreatedManualDocuments, error) {
	f.calls = append(f.calls, record.AccountCode)
	if err, ok := f.errs[record.AccountCode]; ok {
		return nil, err
	}
	if res, ok := f.results[record.AccountCode]; ok {
		return res, nil
	}
	return &mirakl.CreatedManualDocuments{DocumentReturns: []mirakl.ManualDocumentReturn{{DocumentID: "doc-1"}}}, nil
}

type fixture struct {
	store        *fakeStore
	accounts     *fakeAccounts
	shops        *fakeShops
	mail         *fakeMail
	retry        *fakeRetry
	docs         *fakeDocs
	compensation *fakeCompensation
	listener     *Listener
}

func newFixture() *fixture {
	f := &fixture{
		store:        &fakeStore{rows: map[string]*models.PendingNotification{}},
		accounts:     &fakeAccounts{byHolderCode: map[string]*marketpay.AccountHolder{}, byAccountCode: map[string]*marketpay.AccountHolder{}},
		shops:        &fakeShops{shops: map[string]mirakl.Shop{}},
		mail:         &fakeMail{},
		retry:        &fakeRetry{},
		docs:         &fakeDocs{},
		compensation: &fakeCompensation{results: map[string]*mirakl.CreatedManualDocuments{}, errs: map[string]error{}},
	}
	f.listener = New(f.store, f.accounts, f.shops, f.mail, f.retry, f.docs, f.compensation, zap.NewNop().Sugar())
	return f
}
