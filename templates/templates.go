package templates

import (
	"embed"
	"html/template"

	"github.com/shopspring/decimal"
)

//go:embed *.html
var files embed.FS

// New parses every embedded page with the helper funcs the pages use.
func New() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"price": FormatPrice,
	}).ParseFS(files, "*.html")
}

// FormatPrice renders a present price in its shortest exact decimal form and
// an absent one as the empty string. Zero is rendered as "0", never blank.
func FormatPrice(p *float64) string {
	if p == nil {
		return ""
	}
	return decimal.NewFromFloat(*p).String()
}
