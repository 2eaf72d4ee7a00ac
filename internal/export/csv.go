package export

import (
	"strconv"
	"strings"

	"linediff/internal/domain"
)

// csvHeader matches the report format the downstream operators consume.
const csvHeader = "行番号,データ"

// CSV renders one category as CSV text. The position column is bare; the
// content column is always quoted, with internal quotes doubled. An empty
// category still yields the header row.
//
// encoding/csv quotes only when it has to and cannot force-quote a single
// column, so rows are formatted directly.
func CSV(records []domain.LineRecord) string {
	var sb strings.Builder
	sb.WriteString(csvHeader)
	sb.WriteString("\r\n")
	for _, rec := range records {
		sb.WriteString(strconv.Itoa(rec.Position))
		sb.WriteString(`,"`)
		sb.WriteString(strings.ReplaceAll(rec.Content, `"`, `""`))
		sb.WriteString("\"\r\n")
	}
	return sb.String()
}
