package rpc

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/mr-tron/base58"
)

// RPCError represents a JSON-RPC error response
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return e.Message
}

// SignatureInfo represents a transaction signature from getSignaturesForAddress
type SignatureInfo struct {
	Signature string      `json:"signature"`
	Slot      int64       `json:"slot"`
	Err       interface{} `json:"err"`
	BlockTime int64       `json:"blockTime"`
}

// SignaturesResponse is the response from getSignaturesForAddress
type SignaturesResponse struct {
	Result []SignatureInfo `json:"result"`
	Error  *RPCError       `json:"error"`
}

// TokenAmount represents token balance information
type TokenAmount struct {
	Amount         string  `json:"amount"`
	Decimals       int     `json:"decimals"`
	UIAmountString string  `json:"uiAmountString"`
	UIAmount       float64 `json:"uiAmount"`
}

// TokenBalance represents a token balance entry
type TokenBalance struct {
	AccountIndex  int         `json:"accountIndex"`
	Mint          string      `json:"mint"`
	UITokenAmount TokenAmount `json:"uiTokenAmount"`
}

// TransactionMeta contains metadata about a transaction
type TransactionMeta struct {
	Err               interface{}    `json:"err"`
	PreTokenBalances  []TokenBalance `json:"preTokenBalances"`
	PostTokenBalances []TokenBalance `json:"postTokenBalances"`
	LogMessages       []string       `json:"logMessages"`
}

// AccountKey represents an account in a transaction message
type AccountKey struct {
	Pubkey string `json:"pubkey"`
	Signer bool   `json:"signer"`
}

// TransactionMessage contains the transaction message
type TransactionMessage struct {
	AccountKeys []AccountKey `json:"accountKeys"`
}

// Transaction represents a parsed transaction
type Transaction struct {
	Message TransactionMessage `json:"message"`
}

// TransactionResult contains the full transaction data
type TransactionResult struct {
	Meta        *TransactionMeta `json:"meta"`
	Transaction *Transaction     `json:"transaction"`
}

// TransactionResponse is the response from getTransaction
type TransactionResponse struct {
	Result *TransactionResult `json:"result"`
	Error  *RPCError          `json:"error"`
}

// AccountData is the account buffer as delivered over JSON-RPC. Modern
// endpoints answer ["<payload>", "base64"]; some legacy paths answer a bare
// base58 string. Both decode to the same raw bytes.
type AccountData struct {
	raw []byte
}

func (d *AccountData) UnmarshalJSON(b []byte) error {
	var tuple []string
	if err := json.Unmarshal(b, &tuple); err == nil {
		if len(tuple) != 2 {
			return fmt.Errorf("unexpected account data tuple of length %d", len(tuple))
		}
		return d.decode(tuple[0], tuple[1])
	}

	var legacy string
	if err := json.Unmarshal(b, &legacy); err != nil {
		return fmt.Errorf("unexpected account data shape: %w", err)
	}
	return d.decode(legacy, "base58")
}

func (d *AccountData) decode(payload, encoding string) error {
	switch encoding {
	case "base64":
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return fmt.Errorf("decode base64 account data: %w", err)
		}
		d.raw = raw
	case "base58":
		raw, err := base58.Decode(payload)
		if err != nil {
			return fmt.Errorf("decode base58 account data: %w", err)
		}
		d.raw = raw
	default:
		return fmt.Errorf("unsupported account data encoding %q", encoding)
	}
	return nil
}

// Bytes returns the decoded account buffer.
func (d *AccountData) Bytes() []byte {
	return d.raw
}

// AccountValue is one account from getAccountInfo
type AccountValue struct {
	Lamports   uint64      `json:"lamports"`
	Owner      string      `json:"owner"`
	Data       AccountData `json:"data"`
	Executable bool        `json:"executable"`
}

// AccountInfoResult wraps the value; Value is null for absent accounts.
type AccountInfoResult struct {
	Value *AccountValue `json:"value"`
}

// AccountInfoResponse is the response from getAccountInfo
type AccountInfoResponse struct {
	Result *AccountInfoResult `json:"result"`
	Error  *RPCError          `json:"error"`
}
