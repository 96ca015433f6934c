package gen

import (
	"strconv"
	"strings"
	"time"
)

// planDateLayout renders dates like "January 2, 2006"
const planDateLayout = "January 2, 2006"

// RenderTestPlan produces the structured-text test plan: document
// control block plus eight numbered sections separated by heavy rules.
func RenderTestPlan(featureName, requirement string, generatedAt time.Time) Artifact {
	date := generatedAt.Format(planDateLayout)

	var b strings.Builder
	b.WriteString(featureName + " - Test Plan\n\n")
	b.WriteString(sectionRule() + "\n\n")

	b.WriteString("DOCUMENT CONTROL\n\n")
	b.WriteString("Version: " + planVersion + "\n")
	b.WriteString("Date Created: " + date + "\n")
	b.WriteString("Last Updated: " + date + "\n")
	b.WriteString("Author: " + planAuthor + "\n")
	b.WriteString("Status: " + planStatus + "\n\n")
	b.WriteString(sectionRule() + "\n\n\n")

	writePlanIntroduction(&b, requirement)
	writePlanStrategy(&b)
	writePlanEnvironment(&b)
	writePlanRisks(&b)
	writePlanSchedule(&b)
	writePlanRoles(&b)
	writePlanCriteria(&b)
	writePlanDeliverables(&b)

	b.WriteString(sectionRule() + "\n\n")
	b.WriteString("End of Test Plan\n")

	return Artifact{
		Kind:   KindTestPlan,
		Format: FormatStructuredText,
		Title:  featureName + " - Test Plan",
		Body:   []byte(b.String()),
	}
}

func writePlanIntroduction(b *strings.Builder, requirement string) {
	b.WriteString("1. INTRODUCTION & SCOPE\n\n")
	b.WriteString("Feature Overview\n\n")
	b.WriteString(truncateExcerpt(requirement, excerptLen) + "...\n\n\n")

	b.WriteString("Objectives of Testing\n\n")
	b.WriteString(bulletList(planObjectives))
	b.WriteString("\n\nIn-Scope Items\n\n")
	b.WriteString(markedList("✓", planInScope))
	b.WriteString("\n\nOut-of-Scope Items\n\n")
	b.WriteString(markedList("✗", planOutOfScope))
	b.WriteString("\n\n" + sectionRule() + "\n\n\n")
}

func writePlanStrategy(b *strings.Builder) {
	b.WriteString("2. TEST STRATEGY\n\n")
	b.WriteString("Testing Types\n\n")
	for _, tt := range planTestTypes {
		b.WriteString(tt.Heading + "\n")
		if tt.Summary != "" {
			b.WriteString(tt.Summary + "\n")
		}
		if len(tt.Bullets) > 0 {
			b.WriteString(bulletList(tt.Bullets))
		}
		b.WriteString("\n")
	}

	b.WriteString("\nTest Design Techniques\n\n")
	techniques := make([]string, 0, len(planDesignTechniques))
	for _, dt := range planDesignTechniques {
		techniques = append(techniques, dt.Name+" - "+dt.Description)
	}
	b.WriteString(numberedList(techniques))
	b.WriteString("\n\n" + sectionRule() + "\n\n\n")
}

func writePlanEnvironment(b *strings.Builder) {
	b.WriteString("3. TEST ENVIRONMENT\n\n")
	b.WriteString("Hardware Requirements\n")
	b.WriteString(bulletList(planHardware))
	b.WriteString("\nSoftware Requirements\n")
	b.WriteString(bulletList(planSoftware))

	b.WriteString("\nBrowser and Device Matrix\n\n")
	rows := make([][]string, 0, len(planEnvMatrix))
	for _, e := range planEnvMatrix {
		rows = append(rows, []string{e.Browser, e.Version, e.Platform, e.Priority})
	}
	b.WriteString(boxTable([]string{"Browser", "Version", "Platform", "Priority"}, rows))
	b.WriteString("\n\n" + sectionRule() + "\n\n\n")
}

func writePlanRisks(b *strings.Builder) {
	b.WriteString("4. RISK ANALYSIS\n\n")
	b.WriteString("High-Risk Areas\n\n")

	// Risks group by category; numbering runs across groups.
	n := 0
	lastKey := ""
	for _, r := range planRisks {
		key := strings.ToUpper(r.Category) + " RISKS (" + r.Severity + ")"
		if key != lastKey {
			if lastKey != "" {
				b.WriteString("\n")
			}
			b.WriteString(key + "\n")
			lastKey = key
		}
		n++
		b.WriteString(strconv.Itoa(n) + ". " + r.Description + "\n")
	}

	b.WriteString("\nMitigation Strategies\n")
	b.WriteString(bulletList(planMitigations))
	b.WriteString("\n\n" + sectionRule() + "\n\n\n")
}

func writePlanSchedule(b *strings.Builder) {
	b.WriteString("5. SCHEDULE & MILESTONES\n\n")
	b.WriteString("Total Duration: " + planTotalDuration + "\n\n")

	rows := make([][]string, 0, len(planSchedule))
	for _, p := range planSchedule {
		rows = append(rows, []string{p.Phase, p.Duration, p.Deliverables})
	}
	b.WriteString(boxTable([]string{"Phase", "Duration", "Deliverables"}, rows))
	b.WriteString("\n\n" + sectionRule() + "\n\n\n")
}

func writePlanRoles(b *strings.Builder) {
	b.WriteString("6. ROLES & RESPONSIBILITIES\n\n")

	rows := make([][]string, 0, len(planRoles))
	for _, r := range planRoles {
		rows = append(rows, []string{r.Role, r.Responsibilities})
	}
	b.WriteString(boxTable([]string{"Role", "Responsibilities"}, rows))
	b.WriteString("\n\n" + sectionRule() + "\n\n\n")
}

func writePlanCriteria(b *strings.Builder) {
	b.WriteString("7. ENTRY & EXIT CRITERIA\n\n")
	b.WriteString("Entry Criteria\n")
	b.WriteString(bulletList(planEntryCriteria))
	b.WriteString("\nExit Criteria\n")
	b.WriteString(bulletList(planExitCriteria))
	b.WriteString("\nSuspension Criteria\n")
	b.WriteString(bulletList(planSuspensionCriteria))
	b.WriteString("\nResumption Criteria\n")
	b.WriteString(bulletList(planResumptionCriteria))
	b.WriteString("\n\n" + sectionRule() + "\n\n\n")
}

func writePlanDeliverables(b *strings.Builder) {
	b.WriteString("8. DELIVERABLES & DEFECT MANAGEMENT\n\n")
	b.WriteString("Test Deliverables\n")
	b.WriteString(bulletList(planDeliverables))

	b.WriteString("\nDefect Priority Definitions\n\n")
	rows := make([][]string, 0, len(planDefectPriorities))
	for _, d := range planDefectPriorities {
		rows = append(rows, []string{d.Priority, d.Definition, d.Turnaround})
	}
	b.WriteString(boxTable([]string{"Priority", "Definition", "Turnaround"}, rows))
	b.WriteString("\n\n" + sectionRule() + "\n\n\n")
}
