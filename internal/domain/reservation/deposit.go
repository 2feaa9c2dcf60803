package reservation

import "github.com/google/uuid"

// Deposit transitions are one-way and only fire from the paid state. Each
// helper returns the next status and whether the transition actually applied,
// so actions can report a no-op (nothing to refund/forfeit/transfer) without
// treating it as an error.

func TryRefund(current DepositStatus) (DepositStatus, bool) {
	if current != DepositPaid {
		return current, false
	}
	return DepositRefunded, true
}

func TryForfeit(current DepositStatus) (DepositStatus, bool) {
	if current != DepositPaid {
		return current, false
	}
	return DepositForfeited, true
}

func TryTransfer(current DepositStatus, orderID uuid.UUID) (DepositStatus, bool) {
	if current != DepositPaid || orderID == uuid.Nil {
		return current, false
	}
	return DepositTransferred, true
}
