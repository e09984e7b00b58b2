package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/classlint/classlint"
)

// WriteReport write a report in csv format to the output writer
func WriteReport(w io.Writer, data *classlint.ReportInfo) error {
	out := csv.NewWriter(w)
	defer out.Flush()
	for _, issue := range data.Issues {
		cweID := ""
		if issue.Cwe != nil {
			cweID = issue.Cwe.SprintID()
		}
		err := out.Write([]string{
			issue.Class,
			issue.Method,
			strconv.Itoa(issue.PC),
			issue.What,
			issue.Severity.String(),
			issue.Confidence.String(),
			cweID,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
