package constants

// DateTimeFormat is the layout used for entry and account timestamps.
const DateTimeFormat = "2006-01-02 15:04:05"

// Main menu entries, in display order.
const (
	MenuCreateAccount = "Create New Account"
	MenuDeposit       = "Deposit Money"
	MenuWithdraw      = "Withdraw Money"
	MenuCheckBalance  = "Check Balance"
	MenuRequestCredit = "Request Credit"
	MenuPayLoan       = "Pay Loan"
	MenuHistory       = "View Transaction History"
	MenuTransfer      = "Transfer Money"
	MenuListAccounts  = "List Accounts"
	MenuExit          = "Exit"
)

var MainMenu = []string{
	MenuCreateAccount,
	MenuDeposit,
	MenuWithdraw,
	MenuCheckBalance,
	MenuRequestCredit,
	MenuPayLoan,
	MenuHistory,
	MenuTransfer,
	MenuListAccounts,
	MenuExit,
}
