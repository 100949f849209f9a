package models

// Shard is a contiguous slice of the account list assigned to exactly one
// worker for one pass.
type Shard struct {
	// Number is the zero-based shard position.
	Number int
	// Offset is the Index of the first account in Accounts.
	Offset int
	// Accounts are processed strictly in order.
	Accounts []Account
}
