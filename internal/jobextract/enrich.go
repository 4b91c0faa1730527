package jobextract

import (
	"regexp"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

// Enrichment is richer posting data supplied by an external collaborator
// (for example a page scraper with access to structured markup).
type Enrichment struct {
	Title                   string
	Company                 string
	CompanyBackground       string
	Location                string
	SalaryRange             string
	RequiredQualifications  []string
	PreferredQualifications []string
	Responsibilities        []string
	AllRequirements         []string
}

// salaryPattern picks up salary ranges like "$120,000 - $150,000" or
// "$120k-$150k" from posting text.
var salaryPattern = regexp.MustCompile(
	`\$\s?\d{2,3}(?:,\d{3})*(?:k)?\s*(?:-|–|to)\s*\$?\s?\d{2,3}(?:,\d{3})*(?:k)?`)

// ExtractSalaryRange scans posting text for a salary range. Returns the
// first match or the empty string.
func ExtractSalaryRange(text string) string {
	return salaryPattern.FindString(text)
}

// Apply merges enrichment data into a parsed job. Extracted values always
// win: a field that already holds a non-empty value is never overwritten.
func Apply(job *types.ParsedJob, e Enrichment) {
	if job.Title == "" && e.Title != "" {
		job.Title = e.Title
	}
	if job.Company == "" && e.Company != "" {
		job.Company = e.Company
	}
	if job.CompanyBackground == "" && e.CompanyBackground != "" {
		job.CompanyBackground = e.CompanyBackground
	}
	if job.Location == "" && e.Location != "" {
		job.Location = e.Location
	}
	if job.SalaryRange == "" && e.SalaryRange != "" {
		job.SalaryRange = e.SalaryRange
	}
	if len(job.RequiredQualifications) == 0 && len(e.RequiredQualifications) > 0 {
		job.RequiredQualifications = e.RequiredQualifications
	}
	if len(job.PreferredQualifications) == 0 && len(e.PreferredQualifications) > 0 {
		job.PreferredQualifications = e.PreferredQualifications
	}
	if len(job.Responsibilities) == 0 && len(e.Responsibilities) > 0 {
		job.Responsibilities = e.Responsibilities
	}
	if len(job.AllRequirements) == 0 && len(e.AllRequirements) > 0 {
		job.AllRequirements = e.AllRequirements
	}
}
