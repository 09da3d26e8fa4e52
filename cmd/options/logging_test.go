package options

import (
	"os"
	"strings"
	"testing"

	"github.com/eth-easl/speedup/pkg/study"
	"github.com/stretchr/testify/assert"

	log "github.com/sirupsen/logrus"
)

func TestSetupLogging(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	SetupLogging("debug")
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	SetupLogging("trace")
	assert.Equal(t, log.TraceLevel, log.GetLevel())

	SetupLogging("verbose")
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}

func TestLoadConfiguration(t *testing.T) {
	preset := study.MatrixMultiplication()

	cfg := LoadConfiguration("", preset, "")
	assert.Equal(t, preset, cfg)

	cfg = LoadConfiguration("", preset, "out.csv")
	assert.Equal(t, "out.csv", cfg.CSVPath)
	assert.Empty(t, preset.CSVPath)

	path := "config_vector.json"
	if wd, _ := os.Getwd(); strings.HasSuffix(wd, "cmd/options") {
		path = "../" + path
	} else {
		path = "cmd/" + path
	}
	cfg = LoadConfiguration(path, preset, "")
	assert.Equal(t, study.VectorOperations(), cfg)
}
