// Package mocks provides a testify mock for the explorer.Client interface.
package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of explorer.Client.
type Client struct {
	mock.Mock
}

// Query mocks the explorer.Client Query method.
func (m *Client) Query(ctx context.Context, module, action string, params map[string]string) (json.RawMessage, error) {
	args := m.Called(ctx, module, action, params)

	var result json.RawMessage
	if raw := args.Get(0); raw != nil {
		result = raw.(json.RawMessage)
	}
	return result, args.Error(1)
}
