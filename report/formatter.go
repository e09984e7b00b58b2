// (c) Copyright 2016 Hewlett Packard Enterprise Development LP
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"io"

	"github.com/classlint/classlint"
	"github.com/classlint/classlint/report/csv"
	"github.com/classlint/classlint/report/json"
	"github.com/classlint/classlint/report/sarif"
	"github.com/classlint/classlint/report/text"
	"github.com/classlint/classlint/report/yaml"
)

// CreateReport generates a report for the supplied issues and metrics given
// the specified format. The formats currently accepted are: json, yaml, csv,
// sarif and text.
func CreateReport(w io.Writer, format string, enableColor bool, data *classlint.ReportInfo) error {
	var err error
	switch format {
	case "json":
		err = json.WriteReport(w, data)
	case "yaml":
		err = yaml.WriteReport(w, data)
	case "csv":
		err = csv.WriteReport(w, data)
	case "text":
		err = text.WriteReport(w, data, enableColor)
	case "sarif":
		err = sarif.WriteReport(w, data)
	default:
		err = text.WriteReport(w, data, enableColor)
	}
	return err
}
