package parsing

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

// ParseDOCX parses a .docx resume from raw bytes. The WordprocessingML body
// is decoded into flow-layout paragraphs carrying style names and per-run
// bold flags, then parsed as flow input.
func ParseDOCX(data []byte) (types.ParsedResume, error) {
	paragraphs, err := decodeDOCX(data)
	if err != nil {
		return types.ParsedResume{}, err
	}
	return ParseFlow(paragraphs), nil
}

// decodeDOCX reads word/document.xml out of the .docx ZIP container and
// maps its paragraphs to the flow input model.
func decodeDOCX(data []byte) ([]types.Paragraph, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &EmptyDocumentError{Message: "not a valid .docx archive", Cause: err}
	}

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, &EmptyDocumentError{Message: "word/document.xml not found"}
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, &EmptyDocumentError{Message: "opening document.xml", Cause: err}
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, &EmptyDocumentError{Message: "reading document.xml", Cause: err}
	}

	var doc docxDocument
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, &EmptyDocumentError{Message: "parsing document.xml", Cause: err}
	}

	paragraphs := make([]types.Paragraph, 0, len(doc.Body.Paras))
	for _, para := range doc.Body.Paras {
		p := types.Paragraph{}
		if para.PPr != nil && para.PPr.PStyle != nil {
			p.Style = para.PPr.PStyle.Val
		}
		var text strings.Builder
		for _, run := range para.Runs {
			var runText strings.Builder
			for _, t := range run.Text {
				runText.WriteString(t.Content)
			}
			p.Runs = append(p.Runs, types.Run{
				Text: runText.String(),
				Bold: run.isBold(),
			})
			text.WriteString(runText.String())
		}
		p.Text = text.String()
		paragraphs = append(paragraphs, p)
	}

	if len(paragraphs) == 0 {
		return nil, &EmptyDocumentError{Message: "document has no paragraphs"}
	}
	return paragraphs, nil
}

// WordprocessingML structures (simplified).
type docxDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    docxBody `xml:"body"`
}

type docxBody struct {
	Paras []docxPara `xml:"p"`
}

type docxPara struct {
	PPr  *docxParaPr `xml:"pPr"`
	Runs []docxRun   `xml:"r"`
}

type docxParaPr struct {
	PStyle *docxPStyle `xml:"pStyle"`
}

type docxPStyle struct {
	Val string `xml:"val,attr"`
}

type docxRun struct {
	RPr  *docxRunPr `xml:"rPr"`
	Text []docxText `xml:"t"`
}

type docxRunPr struct {
	B *docxBold `xml:"b"`
}

type docxBold struct {
	Val string `xml:"val,attr"`
}

type docxText struct {
	Content string `xml:",chardata"`
}

// isBold reports whether the run carries an explicit bold property.
// <w:b/> with no val means on; val "false" or "0" turns it back off.
func (r docxRun) isBold() bool {
	if r.RPr == nil || r.RPr.B == nil {
		return false
	}
	val := strings.ToLower(r.RPr.B.Val)
	return val != "false" && val != "0"
}
