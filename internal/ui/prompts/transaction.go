package prompts

import (
	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/validation"
)

type TransferInput struct {
	From   string
	To     string
	Amount string
}

// PromptTransfer picks the source, then a different destination, then the amount.
func PromptTransfer(accounts []bank.Snapshot, scale int32) (TransferInput, error) {
	var in TransferInput
	var err error

	if in.From, err = PromptAccountNumber("Transfer from:", accounts); err != nil {
		return in, err
	}
	if in.To, err = PromptAccountNumber("Transfer to:", accounts, in.From); err != nil {
		return in, err
	}
	in.Amount, err = PromptAmount("Amount to transfer:", "", validation.ValidateAmount(scale))
	return in, err
}
