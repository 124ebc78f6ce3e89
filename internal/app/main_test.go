package app

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain ensures no run leaves goroutines behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
