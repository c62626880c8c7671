package rpc

import "encoding/json"

// jsonRPCVersion is the protocol version stamped on every message.
const jsonRPCVersion = "2.0"

// request is an outbound JSON-RPC 2.0 request, encoded as one JSON
// object per line.
type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// response is an inbound JSON-RPC 2.0 response. At most one of Result
// and Error is populated.
type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *responseError  `json:"error,omitempty"`
}

// responseError is the error member of a JSON-RPC 2.0 response.
type responseError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}
