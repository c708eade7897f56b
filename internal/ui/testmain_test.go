package ui

import (
	"os"
	"testing"

	"github.com/zhubert/saasboard/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init(os.DevNull)
	os.Exit(m.Run())
}
