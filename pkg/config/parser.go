package config

import (
	"encoding/json"
	"os"

	"github.com/eth-easl/speedup/pkg/common"

	log "github.com/sirupsen/logrus"
)

func ReadConfigurationFile(path string) AnalysisConfiguration {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	var config AnalysisConfiguration
	err = json.Unmarshal(byteValue, &config)
	if err != nil {
		log.Fatal(err)
	}

	ApplyDefaults(&config)
	CheckAnalysisConfiguration(config)

	return config
}

// ApplyDefaults fills in the optional layout fields left empty in a configuration file.
func ApplyDefaults(config *AnalysisConfiguration) {
	if len(config.Processors) == 0 {
		config.Processors = append([]int(nil), common.DefaultProcessorCounts...)
	}
	if config.SelectedProblemSize == 0 && len(config.Measurements) > 0 {
		config.SelectedProblemSize = config.Measurements[len(config.Measurements)-1].ProblemSize
	}
	if config.ChartFractionDigits == 0 {
		config.ChartFractionDigits = 3
	}
	if config.ReportFractionDigits == 0 {
		config.ReportFractionDigits = 4
	}
	if config.ReportPercentDigits == 0 {
		config.ReportPercentDigits = 2
	}
	if config.RuleWidth == 0 {
		config.RuleWidth = 70
	}

	for i := range config.Figures {
		figure := &config.Figures[i]
		if figure.WidthInches == 0 {
			figure.WidthInches = common.DefaultFigureWidthInches
		}
		if figure.HeightInches == 0 {
			figure.HeightInches = common.DefaultFigureHeightInches
		}
		if figure.DPI == 0 {
			figure.DPI = common.DefaultFigureDPI
		}
	}
}

func CheckAnalysisConfiguration(config AnalysisConfiguration) {
	log.Debug("Checking analysis configuration ", config.Name)

	if config.Name == "" {
		log.Fatal("Analysis name is missing")
	}
	common.CheckProblemKind(config.ProblemKind)
	common.CheckMeasurementTable(config.Measurements)
	common.CheckProcessorCounts(config.Processors)

	if _, ok := config.Measurements.Lookup(config.SelectedProblemSize); !ok {
		log.Fatal("Selected problem size ", config.SelectedProblemSize, " is not in the measurement table")
	}

	if len(config.Figures) == 0 {
		log.Fatal("No figure found in configuration file")
	}
	for _, figure := range config.Figures {
		if figure.OutputPath == "" {
			log.Fatal("Figure without OutputPath in analysis ", config.Name)
		}
		if len(figure.Panels) != common.FigureRows*common.FigureCols {
			log.Fatal("Figure ", figure.OutputPath, " must have exactly ", common.FigureRows*common.FigureCols, " panels")
		}
		for _, panel := range figure.Panels {
			common.CheckPanelKind(panel.Kind)
			for _, ref := range panel.References {
				common.CheckSequentialFraction(ref.SequentialFraction)
			}
			for _, fs := range panel.Fractions {
				common.CheckSequentialFraction(fs)
			}
		}
	}

	log.Debug("Analysis configuration ", config.Name, " is valid")
}
