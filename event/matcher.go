package event

import "strings"

// IsFoundIn reports whether exactly one non-removed log in
// receipt matches e. Zero matches and more than one match
// both report false: the upstream protocol guarantees
// uniqueness via a draft-transaction identifier embedded in
// the event, so ambiguity is treated as failure rather than
// picking a candidate.
func (e *EncodedEvent) IsFoundIn(receipt TransactionReceipt) bool {
	found, _ := e.FindIn(receipt)
	return found
}

// FindIn returns the single non-removed log in receipt that
// matches e, along with true. If zero or more than one log
// matches, it returns false and the zero-value log.
func (e *EncodedEvent) FindIn(receipt TransactionReceipt) (bool, TransactionReceiptLog) {
	if !receipt.Succeeded() {
		return false, TransactionReceiptLog{}
	}

	var match TransactionReceiptLog
	count := 0
	for _, l := range receipt.Logs {
		if l.Removed {
			continue
		}
		if e.matches(l) {
			match = l
			count++
		}
	}

	if count != 1 {
		return false, TransactionReceiptLog{}
	}
	return true, match
}

func (e *EncodedEvent) matches(l TransactionReceiptLog) bool {
	if !strings.EqualFold(e.Address, l.Address) {
		return false
	}
	if len(e.Topics) != len(l.Topics) {
		return false
	}
	for i := range e.Topics {
		if !strings.EqualFold(e.Topics[i], l.Topics[i]) {
			return false
		}
	}
	return strings.EqualFold(e.Data, l.Data)
}
