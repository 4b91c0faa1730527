package types

// Run is a formatted run inside a flow-layout paragraph.
type Run struct {
	Text string `json:"text"`
	Bold bool   `json:"bold"`
}

// Paragraph is one flow-layout input unit: text plus style metadata,
// with no positional coordinates.
type Paragraph struct {
	Text  string `json:"text"`
	Style string `json:"style"`
	Runs  []Run  `json:"runs,omitempty"`
}

// Char is one fixed-layout input unit: a positioned character with font
// metadata. Top grows downward, so ascending Top is reading order.
type Char struct {
	Text     string  `json:"text"`
	Top      float64 `json:"top"`
	X0       float64 `json:"x0"`
	Size     float64 `json:"size"`
	FontName string  `json:"fontname"`
}

// Page holds the unordered characters of one fixed-layout page.
type Page struct {
	Chars []Char `json:"chars"`
}
