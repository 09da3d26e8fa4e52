package report

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/eth-easl/speedup/pkg/model"
)

// narrativeData is what narrative lines can reference.
type narrativeData struct {
	ProblemSize int
	Fraction    float64
	MaxSpeedup  float64
}

func (p *Printer) writeNarrative(buf *bytes.Buffer) error {
	if len(p.cfg.Narrative) == 0 {
		return nil
	}

	selected := p.cfg.SelectedMeasurement()
	data := narrativeData{
		ProblemSize: selected.ProblemSize,
		Fraction:    selected.SequentialFraction,
		MaxSpeedup:  model.MaxSpeedup(selected.SequentialFraction),
	}

	rule := strings.Repeat("=", p.cfg.RuleWidth)
	for _, section := range p.cfg.Narrative {
		fmt.Fprintf(buf, "\n%s\n%s\n%s\n", rule, section.Heading, rule)

		for i, line := range section.Lines {
			tmpl, err := template.New(fmt.Sprintf("%s:%d", section.Heading, i)).Parse(line)
			if err != nil {
				return fmt.Errorf("parsing narrative line %q: %w", line, err)
			}
			if err := tmpl.Execute(buf, data); err != nil {
				return fmt.Errorf("rendering narrative line %q: %w", line, err)
			}
			buf.WriteByte('\n')
		}
	}
	fmt.Fprintln(buf, rule)

	return nil
}
