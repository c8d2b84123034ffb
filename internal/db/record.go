package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTable is returned for table names outside the allow-list.
var ErrInvalidTable = errors.New("invalid table specified")

// Table identifies one of the allow-listed record tables. SQL statements
// only ever interpolate Table constants, never raw request input.
type Table string

const (
	TableWorkcards   Table = "workcards"
	TablePitches     Table = "pitches"
	TableCompetition Table = "competition"
)

// AllTables lists every table the API serves.
func AllTables() []Table {
	return []Table{TableWorkcards, TablePitches, TableCompetition}
}

// ParseTable validates a raw table name against the allow-list.
func ParseTable(raw string) (Table, error) {
	switch Table(strings.TrimSpace(raw)) {
	case TableWorkcards:
		return TableWorkcards, nil
	case TablePitches:
		return TablePitches, nil
	case TableCompetition:
		return TableCompetition, nil
	default:
		return "", ErrInvalidTable
	}
}

func (t Table) String() string {
	return string(t)
}

// StringList stores an ordered list of strings as a JSON-encoded TEXT column.
type StringList []string

// Value implements driver.Valuer. A nil list persists as an empty list.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}

	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// GormDataType keeps the column a plain TEXT regardless of dialect.
func (StringList) GormDataType() string {
	return "text"
}

// Record is one row in any of the allow-listed tables. The three tables are
// independent flat collections sharing this exact shape. JSON keys match the
// wire format the frontend already consumes.
type Record struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Size         string     `gorm:"size:50" json:"size"`
	Img          string     `gorm:"type:text" json:"img"`
	Text         string     `gorm:"type:text" json:"text"`
	PDFURL       string     `gorm:"column:pdf_url;type:text" json:"pdfUrl"`
	TextPara     StringList `gorm:"column:text_para" json:"textPara"`
	DetailsRoute string     `gorm:"size:255" json:"detailsRoute"`
}
