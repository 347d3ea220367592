package usecase_test

import (
	"os"
	"testing"

	"peso-job-portal/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
