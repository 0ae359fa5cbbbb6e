package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samtech361/Jobupdates-cs-project/internal/taxonomy"
	"github.com/Samtech361/Jobupdates-cs-project/internal/types"
)

func testTaxonomy(t *testing.T) *taxonomy.Taxonomy {
	t.Helper()
	tax, err := taxonomy.New(
		[]string{"languages", "frontend", "databases"},
		map[string][]string{
			"languages": {"go", "python", "c++"},
			"frontend":  {"react", "vue"},
			"databases": {"postgresql", "mongodb"},
		},
	)
	require.NoError(t, err)
	return tax
}

func TestSkills_FindsPerCategory(t *testing.T) {
	tax := testTaxonomy(t)
	findings := Skills(tax, "Backend engineer with Go and Python, plus React on the frontend.")

	assert.Equal(t, []string{"go", "python"}, findings.Found["languages"])
	assert.Equal(t, []string{"react"}, findings.Found["frontend"])
}

func TestSkills_OmitsEmptyCategories(t *testing.T) {
	tax := testTaxonomy(t)
	findings := Skills(tax, "Go developer.")

	_, hasDatabases := findings.Found["databases"]
	assert.False(t, hasDatabases, "category with no matches should be absent, not empty")
	_, hasFrontend := findings.Found["frontend"]
	assert.False(t, hasFrontend)
}

func TestSkills_FrequencyCoversWholeTaxonomy(t *testing.T) {
	tax := testTaxonomy(t)
	findings := Skills(tax, "Python and python and more Python. Also C++.")

	assert.Equal(t, 3, findings.Frequency["python"])
	assert.Equal(t, 1, findings.Frequency["c++"])
	assert.Equal(t, 0, findings.Frequency["mongodb"], "unmatched skills still get a zero count")
	assert.Len(t, findings.Frequency, 7)
}

func TestSkills_NoSubstringFalsePositives(t *testing.T) {
	tax := testTaxonomy(t)
	findings := Skills(tax, "I like reactive programming and the gopher mascot.")

	assert.Empty(t, findings.Found)
}

func TestTerms_SingleCategory(t *testing.T) {
	tax := testTaxonomy(t)
	findings := Terms(tax, "languages", "Go and Python services talking to PostgreSQL.")

	assert.Equal(t, []string{"go", "python"}, findings.Found)
	assert.Equal(t, 1, findings.Frequency["go"])
	assert.Equal(t, 0, findings.Frequency["c++"])
	assert.NotContains(t, findings.Frequency, "postgresql")
}

func TestTerms_EmptyText(t *testing.T) {
	tax := testTaxonomy(t)
	findings := Terms(tax, "languages", "")

	assert.Empty(t, findings.Found)
	assert.NotNil(t, findings.Found)
}

func TestExperience_SinglePattern(t *testing.T) {
	signal := Experience("I have 5 years of experience building APIs.")

	require.NotNil(t, signal.TotalYears)
	assert.Equal(t, 5, *signal.TotalYears)
	require.Len(t, signal.Experiences, 1)
	assert.Equal(t, 5, signal.Experiences[0].Years)
	assert.Contains(t, signal.Experiences[0].Context, "5 years of experience")
}

func TestExperience_TotalYearsIsMax(t *testing.T) {
	text := "3 years of experience with Go. Previously worked for 7 years as a sysadmin. 2 years in fintech."
	signal := Experience(text)

	require.NotNil(t, signal.TotalYears)
	assert.Equal(t, 7, *signal.TotalYears)
	assert.Len(t, signal.Experiences, 3)
}

func TestExperience_PhrasingVariants(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		years int
	}{
		{"years of experience", "8 years of experience", 8},
		{"plus suffix", "10+ years experience with distributed systems", 10},
		{"yrs abbreviation", "4 yrs experience", 4},
		{"worked for", "worked for 6 years at a bank", 6},
		{"working as", "working as 2 years consultant", 2},
		{"years in", "12 years in software development", 12},
		{"years at", "3 years at a startup", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal := Experience(tt.text)
			require.NotNil(t, signal.TotalYears, "text: %q", tt.text)
			assert.Equal(t, tt.years, *signal.TotalYears)
		})
	}
}

func TestExperience_NoMatch(t *testing.T) {
	signal := Experience("Enthusiastic junior developer, fast learner.")

	assert.Nil(t, signal.TotalYears)
	assert.Empty(t, signal.Experiences)
}

func TestExperience_ContextWindowClamped(t *testing.T) {
	signal := Experience("5 years of experience." + strings.Repeat(" etc", 40))

	require.Len(t, signal.Experiences, 1)
	assert.True(t, strings.HasPrefix(signal.Experiences[0].Context, "5 years"))
	assert.LessOrEqual(t, len(signal.Experiences[0].Context), 125)
}

func TestEducation_Tiers(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		highest types.Degree
	}{
		{"phd", "PhD in Computer Science", types.DegreePhD},
		{"doctorate", "holds a doctorate degree", types.DegreePhD},
		{"masters apostrophe", "Master's degree in engineering", types.DegreeMasters},
		{"mba", "MBA from a state school", types.DegreeMasters},
		{"ms abbreviation", "M.S. Computer Science", types.DegreeMasters},
		{"bachelors apostrophe", "Bachelor's in Mathematics", types.DegreeBachelors},
		{"bachelors plain", "Bachelors of Science", types.DegreeBachelors},
		{"bs abbreviation", "B.S. in Physics", types.DegreeBachelors},
		{"associate", "Associate's degree", types.DegreeAssociate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal := Education(tt.text)
			assert.Equal(t, tt.highest, signal.HighestDegree)
		})
	}
}

func TestEducation_MultipleTiersRetained(t *testing.T) {
	signal := Education("B.S. in CS, then a Master's in Data Science.")

	assert.Equal(t, types.DegreeMasters, signal.HighestDegree)
	assert.Equal(t, []types.Degree{types.DegreeMasters, types.DegreeBachelors}, signal.Degrees)
}

func TestEducation_NoDegree(t *testing.T) {
	signal := Education("Self-taught programmer with bootcamp training.")

	assert.Empty(t, signal.HighestDegree)
	assert.Empty(t, signal.Degrees)
}
