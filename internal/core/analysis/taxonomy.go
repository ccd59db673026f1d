package analysis

// Domain is one of the seven fixed issue categories the review guidebook
// defines. Every issue type maps to exactly one domain.
type Domain string

const (
	DomainParentEngagement  Domain = "Parent Engagement"
	DomainStudentEngagement Domain = "Student Engagement"
	DomainPedagogy          Domain = "Pedagogical Effectiveness"
	DomainProcess           Domain = "Process & Platform Adherence"
	DomainProfessionalism   Domain = "Professionalism & Environment"
	DomainLinguistic        Domain = "Linguistic & Communicative Competence"
	DomainSessionFlags      Domain = "Session Flags"
)

// IssueType is a leaf issue category.
type IssueType string

// Issue types, grouped by domain. Keep groups in guidebook order.
const (
	// Parent Engagement
	TypeNarrowReframing        IssueType = "Narrow Reframing"
	TypeSchedulingRigidity     IssueType = "Scheduling & Pacing Rigidity"
	TypeIgnoringParentConcerns IssueType = "Failing to Address Parent Concerns"

	// Student Engagement
	TypeVagueOpeners         IssueType = "Using Vague Openers"
	TypeAwkwardRapport       IssueType = "Awkward Rapport Attempt"
	TypeConversationStalls   IssueType = "Failing to Sustain Conversation"
	TypeClosedEndedQuestions IssueType = "Over-reliance on Closed-Ended Questions"
	TypeNotAddressingChild   IssueType = "Not Addressing Child First"
	TypeMisusingChildName    IssueType = "Misusing Child's Name/Pronoun"
	TypeParentDominatedTalk  IssueType = "Parent-Dominated Talk (Failure to Redirect)"

	// Pedagogical Effectiveness
	TypePreemptiveQuestioning   IssueType = "Pre-emptive Questioning"
	TypeLeadingQuestions        IssueType = "Using Leading Questions"
	TypeInsufficientScaffolding IssueType = "Insufficient Scaffolding"
	TypeInterruptingThought     IssueType = "Interrupting Student's Thought Process"
	TypeNoCheckForUnderstanding IssueType = "Failing to Check for Understanding (CFU)"
	TypeIncorrectAssessment     IssueType = "Incorrect Problem Assessment"
	TypeMissedFoundationalGaps  IssueType = "Failing to Identify Foundational Gaps"
	TypeSkippingConcepts        IssueType = "Skipping Concepts Without Assessment"

	// Process & Platform Adherence
	TypeRushingSections      IssueType = "Rushing or Skipping Key Sections"
	TypeWrongSlide           IssueType = "Discussing Topics on Wrong Slide"
	TypeParentNotInvolved    IssueType = "Failing to Involve Parent as Required"
	TypeMishandledSelections IssueType = "Mishandling Parent Selections"

	// Professionalism & Environment
	TypeLowEnergy        IssueType = "Low Energy / Unenthusiastic"
	TypeScriptedDelivery IssueType = "Scripted or Robotic Delivery"
	TypePoorLighting     IssueType = "Poor Lighting or Background"
	TypePoorAudio        IssueType = "Poor Audio Quality"
	TypeAffiliationTalk  IssueType = "Unprofessional Affiliation Talk"

	// Linguistic & Communicative Competence
	TypeGrammaticalErrors    IssueType = "Grammatical Errors"
	TypeNonIdiomaticPhrasing IssueType = "Non-Idiomatic Phrasing"
	TypeNonStandardTerms     IssueType = "Use of Non-Standard Pedagogical Terminology"
	TypeDisfluentSpeech      IssueType = "Disfluent Speech / Overuse of Fillers"

	// Session Flags
	TypeTechnicalDisruption IssueType = "Technical Disruption"
	TypeSessionIncomplete   IssueType = "Session Incomplete"
)

// typeDomains is the static lookup every aggregation relies on. A type
// missing from this table is a programming error, not a data error.
var typeDomains = map[IssueType]Domain{
	TypeNarrowReframing:        DomainParentEngagement,
	TypeSchedulingRigidity:     DomainParentEngagement,
	TypeIgnoringParentConcerns: DomainParentEngagement,

	TypeVagueOpeners:         DomainStudentEngagement,
	TypeAwkwardRapport:       DomainStudentEngagement,
	TypeConversationStalls:   DomainStudentEngagement,
	TypeClosedEndedQuestions: DomainStudentEngagement,
	TypeNotAddressingChild:   DomainStudentEngagement,
	TypeMisusingChildName:    DomainStudentEngagement,
	TypeParentDominatedTalk:  DomainStudentEngagement,

	TypePreemptiveQuestioning:   DomainPedagogy,
	TypeLeadingQuestions:        DomainPedagogy,
	TypeInsufficientScaffolding: DomainPedagogy,
	TypeInterruptingThought:     DomainPedagogy,
	TypeNoCheckForUnderstanding: DomainPedagogy,
	TypeIncorrectAssessment:     DomainPedagogy,
	TypeMissedFoundationalGaps:  DomainPedagogy,
	TypeSkippingConcepts:        DomainPedagogy,

	TypeRushingSections:      DomainProcess,
	TypeWrongSlide:           DomainProcess,
	TypeParentNotInvolved:    DomainProcess,
	TypeMishandledSelections: DomainProcess,

	TypeLowEnergy:        DomainProfessionalism,
	TypeScriptedDelivery: DomainProfessionalism,
	TypePoorLighting:     DomainProfessionalism,
	TypePoorAudio:        DomainProfessionalism,
	TypeAffiliationTalk:  DomainProfessionalism,

	TypeGrammaticalErrors:    DomainLinguistic,
	TypeNonIdiomaticPhrasing: DomainLinguistic,
	TypeNonStandardTerms:     DomainLinguistic,
	TypeDisfluentSpeech:      DomainLinguistic,

	TypeTechnicalDisruption: DomainSessionFlags,
	TypeSessionIncomplete:   DomainSessionFlags,
}

// Domains lists all seven domains in guidebook order.
func Domains() []Domain {
	return []Domain{
		DomainParentEngagement,
		DomainStudentEngagement,
		DomainPedagogy,
		DomainProcess,
		DomainProfessionalism,
		DomainLinguistic,
		DomainSessionFlags,
	}
}

// orderedTypes keeps the stable guidebook ordering; typeDomains is the
// lookup, this is the presentation order.
var orderedTypes = []IssueType{
	TypeNarrowReframing, TypeSchedulingRigidity, TypeIgnoringParentConcerns,
	TypeVagueOpeners, TypeAwkwardRapport, TypeConversationStalls,
	TypeClosedEndedQuestions, TypeNotAddressingChild, TypeMisusingChildName,
	TypeParentDominatedTalk,
	TypePreemptiveQuestioning, TypeLeadingQuestions, TypeInsufficientScaffolding,
	TypeInterruptingThought, TypeNoCheckForUnderstanding, TypeIncorrectAssessment,
	TypeMissedFoundationalGaps, TypeSkippingConcepts,
	TypeRushingSections, TypeWrongSlide, TypeParentNotInvolved,
	TypeMishandledSelections,
	TypeLowEnergy, TypeScriptedDelivery, TypePoorLighting, TypePoorAudio,
	TypeAffiliationTalk,
	TypeGrammaticalErrors, TypeNonIdiomaticPhrasing, TypeNonStandardTerms,
	TypeDisfluentSpeech,
	TypeTechnicalDisruption, TypeSessionIncomplete,
}

// IssueTypes lists every leaf type in guidebook order.
func IssueTypes() []IssueType {
	out := make([]IssueType, len(orderedTypes))
	copy(out, orderedTypes)
	return out
}

// DomainOf returns the domain an issue type belongs to. Unknown types fall
// into Session Flags so aggregation never drops an issue on the floor.
func DomainOf(t IssueType) Domain {
	if d, ok := typeDomains[t]; ok {
		return d
	}
	return DomainSessionFlags
}

// KnownType reports whether t is part of the taxonomy.
func KnownType(t IssueType) bool {
	_, ok := typeDomains[t]
	return ok
}
