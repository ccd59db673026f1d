package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomains(t *testing.T) {
	domains := Domains()

	assert.Len(t, domains, 7)
	assert.Equal(t, DomainParentEngagement, domains[0])
	assert.Equal(t, DomainSessionFlags, domains[len(domains)-1])
}

func TestIssueTypes_CoverAllDomains(t *testing.T) {
	types := IssueTypes()
	assert.Len(t, types, 33)

	byDomain := map[Domain]int{}
	for _, typ := range types {
		byDomain[DomainOf(typ)]++
	}

	for _, d := range Domains() {
		assert.NotZero(t, byDomain[d], "domain %q has no issue types", d)
	}
}

func TestIssueTypes_Deterministic(t *testing.T) {
	assert.Equal(t, IssueTypes(), IssueTypes())
}

func TestDomainOf(t *testing.T) {
	assert.Equal(t, DomainPedagogy, DomainOf(TypeLeadingQuestions))
	assert.Equal(t, DomainLinguistic, DomainOf(TypeGrammaticalErrors))

	// Unknown types land in Session Flags rather than being dropped.
	assert.Equal(t, DomainSessionFlags, DomainOf(IssueType("Made-Up Issue")))
}

func TestKnownType(t *testing.T) {
	assert.True(t, KnownType(TypeLowEnergy))
	assert.False(t, KnownType(IssueType("Made-Up Issue")))
}
