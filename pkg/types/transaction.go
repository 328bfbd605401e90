package types

// TransactionStatus tracks money-movement requests (deposits and
// withdrawals). Requests start pending and are resolved by an operator.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusApproved TransactionStatus = "approved"
	TransactionStatusRejected TransactionStatus = "rejected"
)

// NetworkType distinguishes deposit-address networks from withdrawal ones.
type NetworkType string

const (
	NetworkTypeDeposit    NetworkType = "deposit"
	NetworkTypeWithdrawal NetworkType = "withdrawal"
)
