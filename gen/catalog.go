package gen

// Static testing knowledge shared by the renderers. Content is fixed;
// only the feature name, generation date and requirement excerpt vary
// per request.

// planAuthor and planVersion appear in the document-control table
const (
	planVersion = "v1.0"
	planAuthor  = "Senior QA Engineer"
	planStatus  = "Ready for Review"
)

// excerptLen is how much of the requirement text the plan quotes
const excerptLen = 500

var planObjectives = []string{
	"Verify all functional requirements are implemented correctly",
	"Validate security measures and data integrity",
	"Ensure performance targets are met",
	"Confirm cross-browser and mobile compatibility",
	"Validate accessibility compliance (WCAG 2.1 AA)",
}

var planInScope = []string{
	"Functional testing of all requirements",
	"Validation and error handling",
	"Security testing (SQL injection, XSS, CSRF)",
	"Performance testing",
	"Cross-browser compatibility",
	"Mobile device testing",
	"Accessibility testing",
	"Integration testing",
}

var planOutOfScope = []string{
	"Third-party service infrastructure",
	"Load testing beyond 1000 concurrent users",
	"Penetration testing (separate engagement)",
}

// testType is one testing-types entry in the strategy section. Summary
// and Bullets are mutually exclusive in practice but both render fine.
type testType struct {
	Heading string
	Summary string
	Bullets []string
}

var planTestTypes = []testType{
	{
		Heading: "FUNCTIONAL TESTING",
		Summary: "Verify all workflows and features work as specified in requirements",
	},
	{
		Heading: "VALIDATION TESTING",
		Summary: "Test input validation, error messages, and data integrity",
	},
	{
		Heading: "SECURITY TESTING (Critical Priority)",
		Bullets: []string{
			"SQL injection prevention",
			"XSS prevention",
			"CSRF protection",
			"Authentication and authorization",
			"Data encryption",
		},
	},
	{
		Heading: "PERFORMANCE TESTING",
		Bullets: []string{
			"Response time validation",
			"Resource usage monitoring",
			"Concurrent user testing",
		},
	},
	{
		Heading: "COMPATIBILITY TESTING",
		Bullets: []string{
			"Browsers: Chrome, Firefox, Safari, Edge (latest 2 versions)",
			"Mobile: iOS Safari, Android Chrome",
			"Screen sizes: 320px to 1920px",
		},
	},
	{
		Heading: "ACCESSIBILITY TESTING",
		Bullets: []string{
			"WCAG 2.1 AA compliance",
			"Keyboard navigation",
			"Screen reader compatibility",
		},
	},
	{
		Heading: "REGRESSION TESTING",
		Summary: "Ensure new changes do not break existing functionality",
	},
}

// designTechnique is one row of the test-design-techniques table
type designTechnique struct {
	Name        string
	Description string
}

var planDesignTechniques = []designTechnique{
	{"Equivalence Partitioning", "Valid/invalid input classes"},
	{"Boundary Value Analysis", "Min, max, and edge values"},
	{"Decision Table Testing", "All condition combinations"},
	{"State Transition Testing", "Workflow validation"},
	{"Use Case Testing", "Real-world scenarios"},
	{"Negative Testing", "Error handling validation"},
}

var planEntryCriteria = []string{
	"Requirements documented and approved",
	"Test environment provisioned and accessible",
	"Test data prepared",
	"Code deployed to test environment",
	"Unit tests passing",
	"Smoke tests passing",
}

var planExitCriteria = []string{
	"All planned test cases executed",
	"Critical and High priority defects resolved",
	"Test coverage >= 95% of requirements",
	"Performance benchmarks met",
	"Security scan completed with no Critical findings",
	"Regression test suite passing",
	"Test summary report approved by stakeholders",
}

var planSuspensionCriteria = []string{
	"Critical defects blocking further testing",
	"Test environment unavailable for >4 hours",
	"Major requirement changes requiring test redesign",
	"Critical security vulnerability discovered",
}

var planResumptionCriteria = []string{
	"Blocking defects fixed and verified",
	"Test environment restored and stable",
	"Updated requirements reviewed and test cases updated",
	"Security vulnerabilities patched",
}

var planHardware = []string{
	"Application server: 4 CPU cores, 8GB RAM",
	"Database server: 4 CPU cores, 8GB RAM",
}

var planSoftware = []string{
	"Operating System: Ubuntu 22.04 LTS / Windows Server 2022",
	"Web server: Nginx 1.24 / Apache 2.4",
	"Database: PostgreSQL 15 / MySQL 8.0",
	"Application runtime: Latest LTS version",
}

// envRow is one row of the browser/device matrix
type envRow struct {
	Browser  string
	Version  string
	Platform string
	Priority string
}

var planEnvMatrix = []envRow{
	{"Chrome", "Latest 2", "Windows, macOS", "P0"},
	{"Firefox", "Latest 2", "Windows, macOS", "P0"},
	{"Safari", "Latest", "macOS", "P0"},
	{"Edge", "Latest 2", "Windows", "P1"},
	{"iOS Safari", "Latest 2", "iPhone, iPad", "P0"},
	{"Android", "Latest 2", "Android 12-14", "P0"},
}

// risk is one row of the risk-analysis table
type risk struct {
	Category    string
	Severity    string
	Description string
}

var planRisks = []risk{
	{"Security", "Critical", "Data validation vulnerabilities"},
	{"Security", "Critical", "Authentication/Authorization bypass"},
	{"Security", "Critical", "Session management issues"},
	{"Security", "Critical", "Data exposure"},
	{"Functional", "High", "Critical user workflows"},
	{"Functional", "High", "Data integrity"},
	{"Functional", "High", "Error handling gaps"},
	{"Performance", "Medium", "Response time degradation"},
	{"Performance", "Medium", "Concurrent user handling"},
}

var planMitigations = []string{
	"Increase test coverage for high-risk areas",
	"Conduct security penetration testing",
	"Implement automated regression testing",
	"Perform code reviews for security-sensitive code",
	"Conduct load testing to identify performance bottlenecks",
	"Use staged rollout approach (canary deployment)",
}

// schedulePhase is one row of the schedule table
type schedulePhase struct {
	Phase        string
	Duration     string
	Deliverables string
}

const planTotalDuration = "14 business days"

var planSchedule = []schedulePhase{
	{"Test Planning", "1 day", "Test plan approved"},
	{"Test Case Design", "2 days", "Cases reviewed"},
	{"Functional Testing", "3 days", "All functional cases"},
	{"Security Testing", "2 days", "Security validated"},
	{"Compatibility Testing", "2 days", "All browsers tested"},
	{"Exploratory Testing", "2 days", "All charters complete"},
	{"Defect Retesting", "1 day", "All fixes verified"},
	{"Test Reporting", "1 day", "Sign-off obtained"},
}

// roleRow is one row of the roles table
type roleRow struct {
	Role             string
	Responsibilities string
}

var planRoles = []roleRow{
	{"QA Lead", "Test strategy, stakeholder communication"},
	{"Senior QA Engineers (2)", "Test execution, defect reporting"},
	{"Automation Engineer", "Automated test scripts, CI/CD integration"},
	{"Business Analyst", "Requirements clarification, UAT"},
	{"Development Team", "Defect fixing, technical support"},
}

// defectPriority is one row of the defect-priority taxonomy
type defectPriority struct {
	Priority   string
	Definition string
	Turnaround string
}

var planDefectPriorities = []defectPriority{
	{"Critical", "Blocks testing or core workflow; data loss or security breach", "Fix immediately"},
	{"High", "Major function broken with no workaround", "Fix within 1 day"},
	{"Medium", "Function impaired but workaround exists", "Fix within 3 days"},
	{"Low", "Cosmetic or minor usability issue", "Fix before release"},
}

var planDeliverables = []string{
	"Test Plan document (this document)",
	"Test Cases document with traceability matrix",
	"Exploratory Testing Charters",
	"Test execution reports",
	"Defect reports with severity classification",
	"Test summary report",
}
