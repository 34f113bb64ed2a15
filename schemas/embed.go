// Package schemas holds the JSON Schema documents describing résumé files.
package schemas

import _ "embed"

// EmployeeSchema is the JSON Schema of a résumé document
//
//go:embed employee.schema.json
var EmployeeSchema string
