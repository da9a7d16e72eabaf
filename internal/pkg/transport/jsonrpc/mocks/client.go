// Package mocks provides a testify mock for the jsonrpc.Client interface.
package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of jsonrpc.Client.
type Client struct {
	mock.Mock
}

// Fetch mocks the jsonrpc.Client Fetch method.
func (m *Client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	callArgs := make([]any, 0, len(params)+2)
	callArgs = append(callArgs, ctx, method)
	callArgs = append(callArgs, params...)

	args := m.Called(callArgs...)

	var result json.RawMessage
	if raw := args.Get(0); raw != nil {
		result = raw.(json.RawMessage)
	}
	return result, args.Error(1)
}
