package pdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/signintech/gopdf"
)

// Brochure is the event summary rendered into the PDF handed out with the
// welcome email.
type Brochure struct {
	Title    string
	Tagline  string
	Dates    string
	Location string
	Sections []BrochureSection
}

type BrochureSection struct {
	Heading string
	Body    string
}

type Generator struct {
	fontPath string
	fontName string
}

// NewGenerator locates a TTF font once up front; rendering fails cleanly
// later if none of the known locations had one.
func NewGenerator() *Generator {
	wd, _ := os.Getwd()

	fontPaths := []string{
		filepath.Join(wd, "fonts", "DejaVuSans.ttf"),
		"./fonts/DejaVuSans.ttf",
		"fonts/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
		"/Library/Fonts/Arial Unicode.ttf",
	}

	g := &Generator{fontName: "dejavu"}
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			g.fontPath = path
			break
		}
	}

	return g
}

// GenerateBrochure renders the event brochure and returns the PDF bytes.
func (g *Generator) GenerateBrochure(b *Brochure) ([]byte, error) {
	if g.fontPath == "" {
		return nil, fmt.Errorf("TTF font not found, place DejaVuSans.ttf in ./fonts")
	}

	doc := &gopdf.GoPdf{}
	doc.Start(gopdf.Config{
		PageSize: *gopdf.PageSizeA4,
		Unit:     gopdf.Unit_PT,
	})

	if err := doc.AddTTFFont(g.fontName, g.fontPath); err != nil {
		return nil, fmt.Errorf("load font failed: %w", err)
	}

	doc.AddPage()

	if err := g.addHeader(doc, b.Title); err != nil {
		return nil, err
	}

	if err := doc.SetFont(g.fontName, "", 14); err != nil {
		return nil, fmt.Errorf("set font failed: %w", err)
	}

	doc.SetY(100)
	doc.SetX(50)
	doc.Cell(nil, b.Tagline)

	doc.SetY(doc.GetY() + 25)
	doc.SetX(50)
	doc.SetFont(g.fontName, "", 12)
	doc.Cell(nil, "Date: "+b.Dates)

	doc.SetY(doc.GetY() + 18)
	doc.SetX(50)
	doc.Cell(nil, "Location: "+b.Location)

	for _, section := range b.Sections {
		g.addSection(doc, section.Heading, section.Body)
	}

	g.addFooter(doc)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to output PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func (g *Generator) addHeader(doc *gopdf.GoPdf, title string) error {
	doc.SetFillColor(212, 168, 83)
	doc.RectFromUpperLeftWithStyle(0, 0, 595, 70, "F")

	if err := doc.SetFont(g.fontName, "", 24); err != nil {
		return fmt.Errorf("set header font failed: %w", err)
	}
	doc.SetTextColor(255, 255, 255)
	doc.SetX(50)
	doc.SetY(30)
	doc.Cell(nil, title)
	doc.SetTextColor(0, 0, 0)

	return nil
}

func (g *Generator) addSection(doc *gopdf.GoPdf, heading, body string) {
	currentY := doc.GetY() + 24

	if currentY > 750 {
		doc.AddPage()
		currentY = 50
	}

	doc.SetY(currentY)
	doc.SetX(50)

	doc.SetFont(g.fontName, "", 14)
	doc.SetTextColor(0, 0, 0)
	doc.Cell(nil, heading)

	doc.SetY(doc.GetY() + 18)
	doc.SetX(50)
	doc.SetFont(g.fontName, "", 11)
	doc.SetTextColor(50, 50, 50)

	rect := &gopdf.Rect{W: 500, H: 15}
	doc.MultiCell(rect, body)
}

func (g *Generator) addFooter(doc *gopdf.GoPdf) {
	doc.SetY(780)
	doc.SetX(50)
	doc.SetFont(g.fontName, "", 9)
	doc.SetTextColor(150, 150, 150)
	doc.Cell(nil, fmt.Sprintf("Generated %s", time.Now().Format("02.01.2006")))
}
