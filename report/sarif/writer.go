package sarif

import (
	"encoding/json"
	"io"

	"github.com/classlint/classlint"
)

// WriteReport write a report in SARIF format to the output writer
func WriteReport(w io.Writer, data *classlint.ReportInfo) error {
	sr, err := GenerateReport(data)
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(sr, "", "\t")
	if err != nil {
		return err
	}

	_, err = w.Write(raw)
	return err
}
