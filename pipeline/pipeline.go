// Package pipeline wires the stages together: load each configured
// source, assemble the vowel dataset, aggregate and print the three
// summary tables.
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/kbsu-phonlab/tempo-pipeline/config"
	"github.com/kbsu-phonlab/tempo-pipeline/dataset"
	"github.com/kbsu-phonlab/tempo-pipeline/report"
	"github.com/kbsu-phonlab/tempo-pipeline/source"
)

type Pipeline struct {
	cfg *config.Root
	out io.Writer
}

func New(cfg *config.Root, out io.Writer) *Pipeline {
	return &Pipeline{cfg: cfg, out: out}
}

// Run executes the whole pass. All tables are computed before anything is
// printed, so a schema failure in any stage produces no output at all.
func (p *Pipeline) Run() error {
	frames := make([]*dataset.Frame, 0, len(p.cfg.Sources))
	for _, s := range p.cfg.Sources {
		src, err := source.Open(s.Path)
		if err != nil {
			return err
		}
		f, err := dataset.Load(src, s.Variant)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"source":  s.Path,
			"variant": s.Variant,
			"rows":    len(f.Rows),
		}).Info("source loaded")
		frames = append(frames, f)
	}

	ds, err := dataset.Assemble(frames...)
	if err != nil {
		return err
	}

	overall := report.Overall(ds)

	zoned, err := dataset.AssignZones(ds)
	if err != nil {
		return err
	}
	zones := report.ByZone(zoned)
	pivot := report.Pivot(zones)

	fmt.Fprintln(p.out, "Общая таблица по эмоциям и языкам:")
	if err := overall.Render(p.out); err != nil {
		return err
	}
	fmt.Fprintln(p.out, "\nТаблица по позиционным зонам:")
	if err := zones.Render(p.out); err != nil {
		return err
	}
	fmt.Fprintln(p.out, "\nСводная таблица средней процентной длительности (для вставки в статью):")
	if err := pivot.Render(p.out); err != nil {
		return err
	}

	if dir := p.cfg.Report.CSVDir; dir != "" {
		if err := overall.WriteCSV(filepath.Join(dir, "overall.csv")); err != nil {
			return err
		}
		if err := zones.WriteCSV(filepath.Join(dir, "zones.csv")); err != nil {
			return err
		}
		if err := pivot.WriteCSV(filepath.Join(dir, "pivot.csv")); err != nil {
			return err
		}
		log.WithField("dir", dir).Info("tables exported")
	}
	return nil
}
