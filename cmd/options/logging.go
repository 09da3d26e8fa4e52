package options

import (
	"os"
	"time"

	"github.com/eth-easl/speedup/pkg/common"
	"github.com/eth-easl/speedup/pkg/config"

	log "github.com/sirupsen/logrus"
)

// SetupLogging timestamps to the millisecond on stdout, verbosity one of info, debug, trace.
func SetupLogging(verbosity string) {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// LoadConfiguration the preset unless a configuration file is given. A non-empty csvPath
// overrides the export path of either.
func LoadConfiguration(path string, preset config.AnalysisConfiguration, csvPath string) config.AnalysisConfiguration {
	cfg := preset
	if path != "" {
		log.Infof("Reading analysis configuration from %s", path)
		common.CheckPath(path)
		cfg = config.ReadConfigurationFile(path)
	}

	if csvPath != "" {
		cfg.CSVPath = csvPath
	}

	return cfg
}
