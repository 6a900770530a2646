package formatter

import (
	"fmt"
	"rips-service/internal/app/models"
	"rips-service/internal/pkg/constvars"
	"rips-service/internal/pkg/utils"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// MalformedFieldPolicy decides what a malformed value becomes once formatted.
type MalformedFieldPolicy int

const (
	// DegradeToEmpty renders unparseable dates and non-numeric numbers as "".
	DegradeToEmpty MalformedFieldPolicy = iota
	// KeepRawText renders the raw value cut at the field width, the way strings
	// are rendered. Inspection runs use it to see what the source carried.
	KeepRawText
)

// NumericPolicy decides how a number wider than its field is shortened.
type NumericPolicy int

const (
	// NumericTruncate cuts the textual number at the field width, exactly like
	// the files consumers already receive. It can change the magnitude of the
	// value, not only its precision.
	NumericTruncate NumericPolicy = iota
	// NumericRound drops fraction digits with decimal rounding until the value
	// fits. When the integer part alone is wider than the field it falls back
	// to NumericTruncate.
	NumericRound
)

func (p NumericPolicy) String() string {
	switch p {
	case NumericRound:
		return "round"
	default:
		return "truncate"
	}
}

func ParseNumericPolicy(value string) (NumericPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "truncate":
		return NumericTruncate, true
	case "round":
		return NumericRound, true
	default:
		return NumericTruncate, false
	}
}

type Formatter struct {
	Malformed MalformedFieldPolicy
	Numeric   NumericPolicy
}

func New(numeric NumericPolicy) *Formatter {
	return &Formatter{
		Malformed: DegradeToEmpty,
		Numeric:   numeric,
	}
}

// Default formats with the legacy compatible policies.
func Default() *Formatter {
	return New(NumericTruncate)
}

// Format renders value as the text of one field. It never fails: values that
// cannot be represented follow the formatter's MalformedFieldPolicy.
func (f *Formatter) Format(value interface{}, spec models.FieldSpec) string {
	switch spec.Type {
	case models.FieldTypeNumber:
		return f.formatNumber(value, spec.MaxLength)
	case models.FieldTypeDate:
		return f.formatDate(value, spec.MaxLength)
	default:
		return formatString(value, spec.MaxLength)
	}
}

// FormatRecord renders every field of a record in schema order. Fields absent
// from the record are rendered as empty values.
func (f *Formatter) FormatRecord(record models.Record, fields []models.FieldSpec) []string {
	tokens := make([]string, len(fields))
	for i, field := range fields {
		tokens[i] = f.Format(record[field.Name], field)
	}
	return tokens
}

// JoinLine joins formatted tokens with the field delimiter. There is no
// quoting and no trailing delimiter.
func JoinLine(tokens []string) string {
	return strings.Join(tokens, constvars.RipsFieldDelimiter)
}

func formatString(value interface{}, maxLength int) string {
	text := truncate(stringify(value), maxLength)
	return strings.ReplaceAll(text, `"`, "")
}

func (f *Formatter) formatNumber(value interface{}, maxLength int) string {
	text := strings.TrimSpace(stringify(value))
	if text == "" {
		return ""
	}
	number, err := decimal.NewFromString(text)
	if err != nil {
		return f.degrade(text, maxLength)
	}
	if maxLength <= 0 || utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	if f.Numeric == NumericRound {
		return roundToWidth(number, text, maxLength)
	}
	return truncate(text, maxLength)
}

func (f *Formatter) formatDate(value interface{}, maxLength int) string {
	switch v := value.(type) {
	case time.Time:
		return utils.FormatRipsDate(v)
	case *time.Time:
		if v == nil {
			return ""
		}
		return utils.FormatRipsDate(*v)
	}

	text := stringify(value)
	if text == "" {
		return ""
	}
	if utf8.RuneCountInString(text) == len(constvars.RipsDateLayout) {
		return text
	}
	parsed, ok := utils.ParseFlexibleDate(text)
	if !ok {
		return f.degrade(text, maxLength)
	}
	return utils.FormatRipsDate(parsed)
}

// degrade applies the malformed field policy to a value that could not be
// parsed.
func (f *Formatter) degrade(text string, maxLength int) string {
	switch f.Malformed {
	case KeepRawText:
		return formatString(text, maxLength)
	default:
		return ""
	}
}

func roundToWidth(number decimal.Decimal, text string, maxLength int) string {
	integerWidth := len(number.Truncate(0).String())
	if number.IsNegative() && number.Truncate(0).IsZero() {
		integerWidth++
	}
	if integerWidth > maxLength {
		return truncate(text, maxLength)
	}

	places := int32(maxLength - integerWidth - 1)
	if places < 0 {
		places = 0
	}
	rounded := number.Round(places).String()
	if len(rounded) > maxLength {
		return truncate(rounded, maxLength)
	}
	return rounded
}

func truncate(text string, maxLength int) string {
	if maxLength <= 0 || utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxLength])
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case decimal.Decimal:
		return v.String()
	case *decimal.Decimal:
		if v == nil {
			return ""
		}
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return utils.FormatRipsDate(v)
	case *time.Time:
		if v == nil {
			return ""
		}
		return utils.FormatRipsDate(*v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
