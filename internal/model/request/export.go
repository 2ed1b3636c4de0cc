package request

import "errors"

// ExportQuery carries the query parameters of an export request. Value
// comes from ?export= or its legacy alias ?c=.
type ExportQuery struct {
	Value string
	Mode  string
}

const (
	ModeFile = "file"
	ModeJSON = "json"
	ModeLink = "link"
)

func (q *ExportQuery) Validate() error {
	if q.Value == "" {
		return errors.New("Missing query param 'export' (or 'c').")
	}
	return nil
}
