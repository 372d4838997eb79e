// Package schemas embeds the JSON Schemas that describe talk-coach artifacts.
package schemas

import _ "embed"

// ReportPath is the repository-relative location of the report schema.
const ReportPath = "schemas/report.schema.json"

// Report is the JSON Schema of an assessment report.
//
//go:embed report.schema.json
var Report string
