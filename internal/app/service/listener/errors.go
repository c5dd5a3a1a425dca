package listener

import "errors"

// ErrDataInconsistency marks a referenced entity (shop, shareholder) the
// notification implies must exist but the remote system does not have. Fatal
// for the single notification; the raw row stays retained for operators.
var ErrDataInconsistency = errors.New("data inconsistency between marketplace and payment platform")
