package assembler

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"rips-service/internal/app/models"
	"rips-service/internal/app/services/core/rips/formatter"
	"rips-service/internal/app/services/core/rips/schema"
	"rips-service/internal/pkg/constvars"
	"rips-service/internal/pkg/exceptions"
	"strings"
	"time"
)

// Assembler serializes a dataset into the RIPS flat files and, for versions
// that require it, the XML document. It does not validate: an invalid
// dataset still serializes so it can be inspected.
type Assembler struct {
	Registry  *schema.Registry
	Formatter *formatter.Formatter
}

func New(registry *schema.Registry, fieldFormatter *formatter.Formatter) *Assembler {
	if fieldFormatter == nil {
		fieldFormatter = formatter.Default()
	}
	return &Assembler{
		Registry:  registry,
		Formatter: fieldFormatter,
	}
}

// Codes returns the record types of the dataset that produce output, in
// registry order. Empty record types and codes the registry does not know
// are left out.
func (a *Assembler) Codes(dataset *models.RipsDataset) []string {
	var codes []string
	for _, code := range a.Registry.Codes() {
		if dataset.Count(code) > 0 {
			codes = append(codes, code)
		}
	}
	return codes
}

// Serialize renders one text per non-empty record type. Every line is the
// comma joined list of formatted fields, terminated by a newline.
func (a *Assembler) Serialize(dataset *models.RipsDataset) map[string]string {
	texts := make(map[string]string)
	for _, code := range a.Codes(dataset) {
		texts[code] = a.SerializeRecordType(code, dataset.Get(code))
	}
	return texts
}

func (a *Assembler) SerializeRecordType(code string, records []models.Record) string {
	fields := a.Registry.GetFileStructure(code)
	if len(fields) == 0 || len(records) == 0 {
		return ""
	}
	var builder strings.Builder
	for _, record := range records {
		builder.WriteString(formatter.JoinLine(a.Formatter.FormatRecord(record, fields)))
		builder.WriteString(constvars.RipsLineTerminator)
	}
	return builder.String()
}

// SerializeXML renders the dataset as a single XML document. The root carries
// the format version and the generation timestamp, every non-empty record
// type becomes a child element and every record a registro element with one
// attribute per field.
func (a *Assembler) SerializeXML(dataset *models.RipsDataset, generatedAt time.Time) ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteString(xml.Header)

	encoder := xml.NewEncoder(&buffer)
	encoder.Indent("", "  ")

	root := xml.StartElement{
		Name: xml.Name{Local: constvars.RipsXMLRootElement},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: constvars.RipsXMLVersionAttr}, Value: string(a.Registry.Version)},
			{Name: xml.Name{Local: constvars.RipsXMLGeneratedAtAttr}, Value: generatedAt.Format(constvars.RipsTimestampLayout)},
		},
	}
	if err := encoder.EncodeToken(root); err != nil {
		return nil, exceptions.ErrSerializeXML(err)
	}

	for _, code := range a.Codes(dataset) {
		if err := a.encodeRecordType(encoder, code, dataset.Get(code)); err != nil {
			return nil, exceptions.ErrSerializeXML(err)
		}
	}

	if err := encoder.EncodeToken(root.End()); err != nil {
		return nil, exceptions.ErrSerializeXML(err)
	}
	if err := encoder.Flush(); err != nil {
		return nil, exceptions.ErrSerializeXML(err)
	}
	buffer.WriteString(constvars.RipsLineTerminator)
	return buffer.Bytes(), nil
}

func (a *Assembler) encodeRecordType(encoder *xml.Encoder, code string, records []models.Record) error {
	fields := a.Registry.GetFileStructure(code)
	section := xml.StartElement{Name: xml.Name{Local: code}}
	if err := encoder.EncodeToken(section); err != nil {
		return err
	}
	for _, record := range records {
		tokens := a.Formatter.FormatRecord(record, fields)
		element := xml.StartElement{
			Name: xml.Name{Local: constvars.RipsXMLRecordElement},
			Attr: make([]xml.Attr, len(fields)),
		}
		for i, field := range fields {
			element.Attr[i] = xml.Attr{Name: xml.Name{Local: field.Name}, Value: tokens[i]}
		}
		if err := encoder.EncodeToken(element); err != nil {
			return err
		}
		if err := encoder.EncodeToken(element.End()); err != nil {
			return err
		}
	}
	return encoder.EncodeToken(section.End())
}

// FileName is the name of the flat file of a record type, the code followed
// by the six digit remission number.
func FileName(code string, remissionNumber int) string {
	return fmt.Sprintf(constvars.RipsTextFileNameFormat, code, remissionNumber)
}

func XMLFileName(provider models.Provider, remissionDate time.Time) string {
	return fmt.Sprintf(constvars.RipsXMLFileNameFormat, provider.Code, remissionDate.Format(constvars.RipsCompactLayout))
}

// Files renders every output file of the dataset: one flat file per
// non-empty record type and, when the version requires it, the XML document.
func (a *Assembler) Files(dataset *models.RipsDataset, provider models.Provider, remissionDate time.Time, remissionNumber int, generatedAt time.Time) ([]models.GeneratedFile, error) {
	texts := a.Serialize(dataset)

	var files []models.GeneratedFile
	for _, code := range a.Codes(dataset) {
		files = append(files, models.GeneratedFile{
			Code:        code,
			Name:        FileName(code, remissionNumber),
			ContentType: constvars.RipsTextContentType,
			Records:     dataset.Count(code),
			Content:     []byte(texts[code]),
		})
	}

	if a.Registry.EmitsXML && len(files) > 0 {
		content, err := a.SerializeXML(dataset, generatedAt)
		if err != nil {
			return nil, err
		}
		records := 0
		for _, file := range files {
			records += file.Records
		}
		files = append(files, models.GeneratedFile{
			Code:        constvars.RipsXMLRootElement,
			Name:        XMLFileName(provider, remissionDate),
			ContentType: constvars.RipsXMLContentType,
			Records:     records,
			Content:     content,
		})
	}
	return files, nil
}
