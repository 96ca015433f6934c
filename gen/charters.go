package gen

import (
	"strconv"
	"strings"
	"time"
)

// charter is one exploratory testing charter
type charter struct {
	Name     string
	Priority string
	Duration string
	Mission  string
	Areas    []string
	LookFor  []string
}

var charters = []charter{
	{
		Name:     "Input Validation Edge Cases",
		Priority: "High",
		Duration: "90 min",
		Mission:  "Explore input validation boundaries and edge cases to discover validation gaps.",
		Areas: []string{
			"Special characters in all input fields (Unicode, emojis, symbols)",
			"Copy-paste behavior from different sources",
			"Very long inputs (1000+ characters)",
			"Field combinations that might break validation",
			"Browser autofill interaction",
		},
		LookFor: []string{
			"Validation bypasses",
			"Inconsistent error messages",
			"UI breaking with unexpected input",
			"Data truncation without warning",
			"Security vulnerabilities in input handling",
		},
	},
	{
		Name:     "Security Vulnerability Exploration",
		Priority: "Critical",
		Duration: "120 min",
		Mission:  "Attempt to break security measures and find vulnerabilities.",
		Areas: []string{
			"SQL injection in all input fields",
			"XSS payloads in text fields",
			"CSRF attack vectors",
			"Session hijacking attempts",
			"Authentication bypass techniques",
			"Authorization boundary testing",
		},
		LookFor: []string{
			"Unescaped user input",
			"Missing authentication checks",
			"Exposed sensitive data",
			"Weak session management",
			"Missing security headers",
		},
	},
	{
		Name:     "Cross-Browser Compatibility Edge Cases",
		Priority: "Medium",
		Duration: "90 min",
		Mission:  "Find browser-specific issues and rendering problems.",
		Areas: []string{
			"Date picker behavior across browsers",
			"Form validation differences",
			"JavaScript console errors",
			"CSS rendering issues",
			"Browser autofill conflicts",
			"Private/incognito mode behavior",
		},
		LookFor: []string{
			"Visual inconsistencies",
			"Functional breaks in specific browsers",
			"Performance differences",
			"Storage/cookie issues",
		},
	},
	{
		Name:     "Mobile User Experience Testing",
		Priority: "High",
		Duration: "90 min",
		Mission:  "Test mobile usability and responsive design edge cases.",
		Areas: []string{
			"Touch target sizes",
			"Virtual keyboard behavior",
			"Orientation changes",
			"Zooming and pinching",
			"Scroll behavior",
			"Network interruptions",
		},
		LookFor: []string{
			"Difficult-to-tap elements",
			"Keyboard covering inputs",
			"Layout breaking on orientation change",
			"Poor touch responsiveness",
		},
	},
	{
		Name:     "Performance Under Load",
		Priority: "High",
		Duration: "90 min",
		Mission:  "Test system behavior under stress and high load.",
		Areas: []string{
			"Multiple rapid submissions",
			"Concurrent user actions",
			"Large data volumes",
			"Slow network simulation",
			"Memory leaks over time",
		},
		LookFor: []string{
			"Slow response times",
			"System crashes",
			"Data corruption",
			"Memory consumption",
			"Resource exhaustion",
		},
	},
	{
		Name:     "Error Recovery Scenarios",
		Priority: "High",
		Duration: "60 min",
		Mission:  "Test how well the system handles and recovers from errors.",
		Areas: []string{
			"Network interruptions during submission",
			"Browser crash and recovery",
			"Back button after errors",
			"Multiple error conditions simultaneously",
			"Error message helpfulness",
		},
		LookFor: []string{
			"Data loss",
			"Unclear error messages",
			"Poor recovery workflows",
			"System left in inconsistent state",
		},
	},
}

// CharterCount is the number of exploratory charters in every run
func CharterCount() int {
	return len(charters)
}

// RenderCharters produces the exploratory-testing artifact: charter
// summary table, the six charters, and a session notes template.
func RenderCharters(featureName string, generatedAt time.Time) Artifact {
	var b strings.Builder

	b.WriteString(featureName + " - Exploratory Testing\n\n")
	b.WriteString(sectionRule() + "\n\n")
	b.WriteString("EXPLORATORY TESTING CHARTERS\n\n")
	b.WriteString("Generated: " + generatedAt.Format("January 2, 2006") + "\n\n")
	b.WriteString(sectionRule() + "\n\n\n")

	b.WriteString("CHARTER SUMMARY\n\n")
	rows := make([][]string, 0, len(charters))
	for i, c := range charters {
		rows = append(rows, []string{strconv.Itoa(i + 1), c.Name, c.Priority, c.Duration})
	}
	b.WriteString(boxTable([]string{"ID", "Charter Name", "Priority", "Duration"}, rows))
	b.WriteString("\n\n" + sectionRule() + "\n\n\n")

	for i, c := range charters {
		b.WriteString("CHARTER " + strconv.Itoa(i+1) + ": " + c.Name + "\n\n")
		b.WriteString("Priority: " + c.Priority + "\n")
		b.WriteString("Duration: " + strings.Replace(c.Duration, " min", " minutes", 1) + "\n")
		b.WriteString("Tester: [Assign]\n\n")
		b.WriteString("Mission\n" + c.Mission + "\n\n")
		b.WriteString("Areas to Explore\n")
		b.WriteString(bulletList(c.Areas))
		b.WriteString("\nWhat to Look For\n")
		b.WriteString(bulletList(c.LookFor))
		b.WriteString("\n\n" + sectionRule() + "\n\n\n")
	}

	b.WriteString(sessionNotesTemplate)
	b.WriteString("\n\n" + sectionRule() + "\n\n")
	b.WriteString("End of Exploratory Testing Charters\n")

	return Artifact{
		Kind:   KindExploratory,
		Format: FormatStructuredText,
		Title:  featureName + " - Exploratory Testing",
		Body:   []byte(b.String()),
	}
}

const sessionNotesTemplate = `SESSION NOTES TEMPLATE

Charter ID: ___
Tester: ___________
Date: ___________
Start Time: ___________
End Time: ___________

Bugs Found:
1.
2.
3.

Questions Raised:
1.
2.

Areas Not Tested:
1.
2.

Test Coverage: ___ %
Additional Notes:
`
