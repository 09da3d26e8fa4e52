package metric

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Exporter collects the records of one invocation and tags them with a run id.
type Exporter struct {
	runID   string
	records []SpeedupRecord
}

func NewExporter() *Exporter {
	return &Exporter{
		runID: uuid.New().String(),
	}
}

func (ep *Exporter) RunID() string {
	return ep.runID
}

func (ep *Exporter) Report(records ...SpeedupRecord) {
	for _, record := range records {
		record.RunID = ep.runID
		ep.records = append(ep.records, record)
	}
}

func (ep *Exporter) Records() []SpeedupRecord {
	return ep.records
}

func (ep *Exporter) WriteCSV(w io.Writer) error {
	if err := gocsv.Marshal(&ep.records, w); err != nil {
		return fmt.Errorf("marshalling speedup records: %w", err)
	}

	return nil
}

func (ep *Exporter) FinishAndSave(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	err = gocsv.MarshalFile(&ep.records, f)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	log.Infof("Exported %d speedup records to %s (run %s)", len(ep.records), path, ep.runID)

	return f.Close()
}
