package clipboard

import "github.com/stretchr/testify/mock"

type mockClipboard struct {
	mock.Mock
}

func (m *mockClipboard) ReadText() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *mockClipboard) WriteText(text string) error {
	args := m.Called(text)
	return args.Error(0)
}

type mockInjector struct {
	mock.Mock
}

func (m *mockInjector) InjectPaste() error {
	args := m.Called()
	return args.Error(0)
}
