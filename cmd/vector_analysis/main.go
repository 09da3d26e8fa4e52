// Command vector_analysis plots and tabulates the Amdahl and Gustafson speedup of the
// vector operations benchmark (ex3).
package main

import (
	"flag"
	"os"

	"github.com/eth-easl/speedup/cmd/options"
	"github.com/eth-easl/speedup/pkg/analysis"
	"github.com/eth-easl/speedup/pkg/study"

	log "github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "", "Path to an analysis configuration file, the built-in study is used if empty")
	verbosity  = flag.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")
	csvPath    = flag.String("csv", "", "Export every evaluated point to this CSV file")
)

func init() {
	flag.Parse()

	options.SetupLogging(*verbosity)
}

func main() {
	cfg := options.LoadConfiguration(*configPath, study.VectorOperations(), *csvPath)

	if err := analysis.Run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
