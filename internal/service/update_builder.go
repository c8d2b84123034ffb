package service

import "github.com/basilogast/portfolio-server/internal/db"

// RecordInput carries the candidate field values of a create or update
// request. Empty strings and empty lists mean "not supplied".
type RecordInput struct {
	Size         string
	Text         string
	TextPara     db.StringList
	DetailsRoute string
	Img          string
	PDFURL       string
}

// buildUpdates turns a sparse input into SET fragments and a parallel bind
// value list. Fragments follow the fixed field declaration order, never the
// request order, so the output is deterministic for a given input. An empty
// result means the caller must reject the request instead of issuing a
// no-op UPDATE.
func buildUpdates(input RecordInput) ([]string, []interface{}) {
	var updates []string
	var values []interface{}

	if input.Size != "" {
		updates = append(updates, "size = ?")
		values = append(values, input.Size)
	}
	if input.Text != "" {
		updates = append(updates, "text = ?")
		values = append(values, input.Text)
	}
	if len(input.TextPara) > 0 {
		updates = append(updates, "text_para = ?")
		values = append(values, input.TextPara)
	}
	if input.DetailsRoute != "" {
		updates = append(updates, "details_route = ?")
		values = append(values, input.DetailsRoute)
	}
	if input.Img != "" {
		updates = append(updates, "img = ?")
		values = append(values, input.Img)
	}
	if input.PDFURL != "" {
		updates = append(updates, "pdf_url = ?")
		values = append(values, input.PDFURL)
	}

	return updates, values
}
