package ledger

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pta-tools/reimb-parser/internal/common"
)

// rowSchema is the contract a row must satisfy before it is allowed into the
// workbook. The reconciliation columns are free-form and not constrained.
const rowSchema = `{
  "type": "object",
  "required": ["id", "income_expense", "submitted_by", "amount_submitted"],
  "properties": {
    "id": {"type": "integer", "minimum": 1},
    "income_expense": {"enum": ["Income", "Expense"]},
    "year": {"type": "integer", "minimum": 0, "maximum": 2100},
    "month": {"type": "string"},
    "date_received": {"type": "string", "pattern": "^([0-9]{2}/[0-9]{2}/[0-9]{4})?$"},
    "submitted_by": {"type": "string", "minLength": 1},
    "type": {"type": "string", "minLength": 1},
    "amount_submitted": {"type": "string", "pattern": "^[0-9][0-9,]*(\\.[0-9]+)?$"}
  }
}`

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("row.json", strings.NewReader(rowSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return compiler.Compile("row.json")
})

// Validate checks the row against the workbook contract. Violations are
// returned wrapped in ErrValidation so callers can branch on them.
func Validate(r Row) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal row: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("unmarshal row: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return nil
}
