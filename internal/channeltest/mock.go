package channeltest

import "github.com/stretchr/testify/mock"

// MockChannel is a testify mock of transport.Channel for tests that assert
// on calls rather than bytes.
type MockChannel struct {
	mock.Mock
}

// Read implements transport.Channel.
func (m *MockChannel) Read(p []byte) (int, error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

// Write implements transport.Channel.
func (m *MockChannel) Write(p []byte) (int, error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}
