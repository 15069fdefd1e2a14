// Package bench - JSON report output.
package bench

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sugawarayuuta/sonnet"
)

// WriteReport encodes outcomes as indented JSON on w, one array covering
// the whole suite. Rendered histograms ride along in their text form so a
// report is self-contained.
func WriteReport(w io.Writer, outcomes []Outcome) error {
	data, err := sonnet.MarshalIndent(outcomes, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode report")
	}
	data = append(data, '\n')
	if _, err = w.Write(data); err != nil {
		return errors.Wrap(err, "write report")
	}

	return nil
}

// SaveReport writes the suite report to path, truncating any previous file.
func SaveReport(path string, outcomes []Outcome) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create report %s", path)
	}
	if err = WriteReport(f, outcomes); err != nil {
		_ = f.Close()

		return err
	}

	return errors.Wrapf(f.Close(), "close report %s", path)
}
