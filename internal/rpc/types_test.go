package rpc

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountData_Base64Tuple(t *testing.T) {
	raw := []byte{0x00, 0x01, 0x02, 0xff}
	payload := fmt.Sprintf(`["%s","base64"]`, base64.StdEncoding.EncodeToString(raw))

	var data AccountData
	require.NoError(t, json.Unmarshal([]byte(payload), &data))
	assert.Equal(t, raw, data.Bytes())
}

func TestAccountData_Base58Tuple(t *testing.T) {
	raw := []byte("mint account bytes")
	payload := fmt.Sprintf(`["%s","base58"]`, base58.Encode(raw))

	var data AccountData
	require.NoError(t, json.Unmarshal([]byte(payload), &data))
	assert.Equal(t, raw, data.Bytes())
}

func TestAccountData_LegacyBareString(t *testing.T) {
	raw := []byte{0x11, 0x22, 0x33}
	payload := fmt.Sprintf(`"%s"`, base58.Encode(raw))

	var data AccountData
	require.NoError(t, json.Unmarshal([]byte(payload), &data))
	assert.Equal(t, raw, data.Bytes())
}

func TestAccountData_UnsupportedEncoding(t *testing.T) {
	var data AccountData
	err := json.Unmarshal([]byte(`["AAEC","jsonParsed"]`), &data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported account data encoding")
}

func TestAccountData_BadTupleLength(t *testing.T) {
	var data AccountData
	err := json.Unmarshal([]byte(`["AAEC","base64","extra"]`), &data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tuple of length 3")
}

func TestAccountData_InvalidBase64(t *testing.T) {
	var data AccountData
	err := json.Unmarshal([]byte(`["not_base64!","base64"]`), &data)
	require.Error(t, err)
}

func TestAccountInfoResponse_NullValue(t *testing.T) {
	var resp AccountInfoResponse
	require.NoError(t, json.Unmarshal([]byte(`{"result":{"value":null}}`), &resp))
	require.NotNil(t, resp.Result)
	assert.Nil(t, resp.Result.Value)
}

func TestTransactionResponse_Decode(t *testing.T) {
	payload := `{
		"result": {
			"meta": {
				"err": null,
				"logMessages": ["Program log: Instruction: Create"],
				"postTokenBalances": [
					{"accountIndex": 3, "mint": "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263", "uiTokenAmount": {"amount": "1000000000", "decimals": 6}}
				]
			},
			"transaction": {
				"message": {
					"accountKeys": [
						{"pubkey": "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN", "signer": true}
					]
				}
			}
		}
	}`

	var resp TransactionResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	require.NotNil(t, resp.Result)
	require.NotNil(t, resp.Result.Meta)

	assert.Equal(t, []string{"Program log: Instruction: Create"}, resp.Result.Meta.LogMessages)
	require.Len(t, resp.Result.Meta.PostTokenBalances, 1)
	assert.Equal(t, "1000000000", resp.Result.Meta.PostTokenBalances[0].UITokenAmount.Amount)
	require.Len(t, resp.Result.Transaction.Message.AccountKeys, 1)
	assert.True(t, resp.Result.Transaction.Message.AccountKeys[0].Signer)
}

func TestRPCError_Error(t *testing.T) {
	err := &RPCError{Code: -32602, Message: "invalid params"}
	assert.Equal(t, "invalid params", err.Error())
}
