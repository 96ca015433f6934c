package gen

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/qaforge/qaforge/errors"
)

// pdf layout constants, A4 portrait in millimetres
const (
	pdfMarginMM    = 15
	pdfLineHeight  = 5.5
	pdfCellHeight  = 7
	pdfHeadingSize = 13
	pdfTitleSize   = 18
	pdfBodySize    = 10
)

// RenderTestPlanPDF produces the test plan as a paginated document.
// Section content mirrors the structured-text renderer; tables become
// ruled grids and each numbered section starts on a fresh page.
func RenderTestPlanPDF(featureName, requirement string, generatedAt time.Time) (Artifact, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMarginMM, pdfMarginMM, pdfMarginMM)
	doc.SetAutoPageBreak(true, pdfMarginMM)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	date := generatedAt.Format(planDateLayout)

	p := &planPDF{doc: doc, tr: tr}

	doc.AddPage()
	doc.SetFont("Helvetica", "B", pdfTitleSize)
	doc.MultiCell(0, 9, tr(featureName+" - Test Plan"), "", "C", false)
	doc.Ln(6)

	p.heading("Document Control")
	p.keyValue("Version", planVersion)
	p.keyValue("Date Created", date)
	p.keyValue("Last Updated", date)
	p.keyValue("Author", planAuthor)
	p.keyValue("Status", planStatus)

	p.section("1. Introduction & Scope")
	p.subheading("Feature Overview")
	p.paragraph(truncateExcerpt(requirement, excerptLen) + "...")
	p.subheading("Objectives of Testing")
	p.bullets(planObjectives)
	p.subheading("In-Scope Items")
	p.bullets(planInScope)
	p.subheading("Out-of-Scope Items")
	p.bullets(planOutOfScope)

	p.section("2. Test Strategy")
	p.subheading("Testing Types")
	for _, tt := range planTestTypes {
		p.boldLine(tt.Heading)
		if tt.Summary != "" {
			p.paragraph(tt.Summary)
		}
		if len(tt.Bullets) > 0 {
			p.bullets(tt.Bullets)
		}
	}
	p.subheading("Test Design Techniques")
	for i, dt := range planDesignTechniques {
		p.paragraph(strconv.Itoa(i+1) + ". " + dt.Name + " - " + dt.Description)
	}

	p.section("3. Test Environment")
	p.subheading("Hardware Requirements")
	p.bullets(planHardware)
	p.subheading("Software Requirements")
	p.bullets(planSoftware)
	p.subheading("Browser and Device Matrix")
	envRows := make([][]string, 0, len(planEnvMatrix))
	for _, e := range planEnvMatrix {
		envRows = append(envRows, []string{e.Browser, e.Version, e.Platform, e.Priority})
	}
	p.table([]string{"Browser", "Version", "Platform", "Priority"}, []float64{35, 30, 70, 30}, envRows)

	p.section("4. Risk Analysis")
	p.subheading("High-Risk Areas")
	n := 0
	lastKey := ""
	for _, r := range planRisks {
		key := strings.ToUpper(r.Category) + " RISKS (" + r.Severity + ")"
		if key != lastKey {
			p.boldLine(key)
			lastKey = key
		}
		n++
		p.paragraph(strconv.Itoa(n) + ". " + r.Description)
	}
	p.subheading("Mitigation Strategies")
	p.bullets(planMitigations)

	p.section("5. Schedule & Milestones")
	p.paragraph("Total Duration: " + planTotalDuration)
	schedRows := make([][]string, 0, len(planSchedule))
	for _, ph := range planSchedule {
		schedRows = append(schedRows, []string{ph.Phase, ph.Duration, ph.Deliverables})
	}
	p.table([]string{"Phase", "Duration", "Deliverables"}, []float64{65, 30, 70}, schedRows)

	p.section("6. Roles & Responsibilities")
	roleRows := make([][]string, 0, len(planRoles))
	for _, r := range planRoles {
		roleRows = append(roleRows, []string{r.Role, r.Responsibilities})
	}
	p.table([]string{"Role", "Responsibilities"}, []float64{60, 110}, roleRows)

	p.section("7. Entry & Exit Criteria")
	p.subheading("Entry Criteria")
	p.bullets(planEntryCriteria)
	p.subheading("Exit Criteria")
	p.bullets(planExitCriteria)
	p.subheading("Suspension Criteria")
	p.bullets(planSuspensionCriteria)
	p.subheading("Resumption Criteria")
	p.bullets(planResumptionCriteria)

	p.section("8. Deliverables & Defect Management")
	p.subheading("Test Deliverables")
	p.bullets(planDeliverables)
	p.subheading("Defect Priority Definitions")
	defRows := make([][]string, 0, len(planDefectPriorities))
	for _, d := range planDefectPriorities {
		defRows = append(defRows, []string{d.Priority, d.Definition, d.Turnaround})
	}
	p.table([]string{"Priority", "Definition", "Turnaround"}, []float64{30, 100, 40}, defRows)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return Artifact{}, errors.Wrap(err, "failed to render test plan pdf")
	}

	return Artifact{
		Kind:   KindTestPlan,
		Format: FormatPaginatedDocument,
		Title:  featureName + " - Test Plan",
		Body:   buf.Bytes(),
	}, nil
}

// planPDF wraps the document with the handful of styles the plan uses
type planPDF struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

// section starts a numbered top-level section on a new page
func (p *planPDF) section(title string) {
	p.doc.AddPage()
	p.doc.SetFont("Helvetica", "B", pdfHeadingSize+2)
	p.doc.MultiCell(0, 8, p.tr(title), "", "L", false)
	p.doc.Ln(2)
}

func (p *planPDF) heading(text string) {
	p.doc.SetFont("Helvetica", "B", pdfHeadingSize)
	p.doc.MultiCell(0, 7, p.tr(text), "", "L", false)
	p.doc.Ln(1)
}

func (p *planPDF) subheading(text string) {
	p.doc.Ln(2)
	p.doc.SetFont("Helvetica", "B", pdfBodySize+1)
	p.doc.MultiCell(0, 6, p.tr(text), "", "L", false)
}

func (p *planPDF) boldLine(text string) {
	p.doc.SetFont("Helvetica", "B", pdfBodySize)
	p.doc.MultiCell(0, pdfLineHeight, p.tr(text), "", "L", false)
}

func (p *planPDF) paragraph(text string) {
	p.doc.SetFont("Helvetica", "", pdfBodySize)
	p.doc.MultiCell(0, pdfLineHeight, p.tr(text), "", "L", false)
}

func (p *planPDF) keyValue(key, value string) {
	p.doc.SetFont("Helvetica", "B", pdfBodySize)
	p.doc.CellFormat(40, pdfLineHeight, p.tr(key+":"), "", 0, "L", false, 0, "")
	p.doc.SetFont("Helvetica", "", pdfBodySize)
	p.doc.CellFormat(0, pdfLineHeight, p.tr(value), "", 1, "L", false, 0, "")
}

func (p *planPDF) bullets(items []string) {
	p.doc.SetFont("Helvetica", "", pdfBodySize)
	for _, item := range items {
		p.doc.CellFormat(6, pdfLineHeight, p.tr("•"), "", 0, "R", false, 0, "")
		p.doc.MultiCell(0, pdfLineHeight, p.tr(item), "", "L", false)
	}
}

// table draws a ruled grid with a shaded header row
func (p *planPDF) table(headers []string, widths []float64, rows [][]string) {
	p.doc.Ln(2)
	p.doc.SetFont("Helvetica", "B", pdfBodySize)
	p.doc.SetFillColor(55, 71, 79)
	p.doc.SetTextColor(255, 255, 255)
	for i, h := range headers {
		p.doc.CellFormat(widths[i], pdfCellHeight, p.tr(h), "1", 0, "L", true, 0, "")
	}
	p.doc.Ln(-1)

	p.doc.SetFont("Helvetica", "", pdfBodySize)
	p.doc.SetTextColor(0, 0, 0)
	for _, row := range rows {
		for i, w := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			p.doc.CellFormat(w, pdfCellHeight, p.tr(cell), "1", 0, "L", false, 0, "")
		}
		p.doc.Ln(-1)
	}
	p.doc.Ln(2)
}
