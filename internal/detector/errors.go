package detector

import "errors"

// Per-launch failure conditions. Both cause the launch to be skipped with a
// logged notice; neither terminates the feed loop.
var (
	// ErrTxNotFound means the transaction record is absent (pruned, not
	// yet confirmed, or an invalid signature). Not retried.
	ErrTxNotFound = errors.New("transaction not found")

	// ErrMintNotIdentified means no post token balance carried the fixed
	// launch supply, so the new mint could not be identified.
	ErrMintNotIdentified = errors.New("mint not identified")
)
