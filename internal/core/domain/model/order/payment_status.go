package order

import "fooddelivery/internal/pkg/errs"

// PaymentStatus tracks the payment side of an order independently of its lifecycle status.
type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentPaid          PaymentStatus = "completed"
	PaymentVoided        PaymentStatus = "voided"
	PaymentRefundPending PaymentStatus = "refund_pending"
)

// Validate rejects values outside the known payment statuses.
func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentPaid, PaymentVoided, PaymentRefundPending:
		return nil
	default:
		return errs.NewValueIsInvalidError("payment status is invalid")
	}
}

func (p PaymentStatus) String() string {
	return string(p)
}

// after derives the payment status that follows a lifecycle transition to next.
func (p PaymentStatus) after(next Status) PaymentStatus {
	switch next {
	case PaymentCompleted:
		return PaymentPaid
	case Cancelled, SellerRejected:
		if p == PaymentPaid {
			return PaymentRefundPending
		}
		return PaymentVoided
	default:
		return p
	}
}
