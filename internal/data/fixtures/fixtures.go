// Package fixtures builds the deterministic demo dataset: 100 trials with
// transcripts, seed annotations, and structured issues. The data is loaded
// once at startup into explicit stores passed by reference — never held in
// ambient package-level state.
package fixtures

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/analysis"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/trial"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/stores"
)

// seed fixes the generator so every process start produces the same dataset.
const seed = 42

const sampleVideoURL = "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4"

var studentNames = []string{
	"Emma Johnson", "Liam Chen", "Sophia Patel", "Noah Williams", "Ava Brown",
	"Oliver Singh", "Isabella Rodriguez", "Mason Kumar", "Charlotte Thompson",
	"Lucas Garcia", "Amelia Davis", "Ethan Wilson", "Harper Miller",
	"Alexander Anderson", "Evelyn Taylor", "Benjamin Thomas", "Abigail Jackson",
	"Jacob White", "Emily Harris", "Michael Martin",
}

var tutorNames = []string{
	"Alex Rodriguez", "Maria Santos", "David Kim", "Sarah Thompson",
	"Michael Garcia", "Rachel Chen", "James Wilson", "Lisa Patel",
	"Kevin Singh", "Amanda Davis", "Ryan Miller", "Jessica Anderson",
	"Tyler Taylor", "Ashley White", "Brandon Harris", "Stephanie Martin",
}

var grades = []string{"Grade 3", "Grade 4", "Grade 5", "Grade 6", "Grade 7"}

var regions = []trial.Region{trial.RegionNAM, trial.RegionISC, trial.RegionROW}

var channels = []trial.Channel{
	trial.ChannelPerfMeta, trial.ChannelOrganicContent, trial.ChannelBTL,
	trial.ChannelTutorReferral, trial.ChannelParentReferral,
}

var versions = []trial.Version{trial.VersionLegacy, trial.VersionV31, trial.VersionV32}

var severities = []analysis.Severity{
	analysis.SeverityLow, analysis.SeverityMedium,
	analysis.SeverityHigh, analysis.SeverityCritical,
}

// Load populates the stores with the full fixture dataset.
func Load(ts *stores.TrialStore, anns *stores.AnnotationStore) {
	rng := rand.New(rand.NewSource(seed))

	for _, r := range reviewers() {
		ts.AddReviewer(r)
	}

	issueTypes := analysis.IssueTypes()

	for i := 1; i <= 100; i++ {
		id := fmt.Sprintf("trial-%03d", i)

		date := time.Date(2024,
			time.Month(rng.Intn(3)+1), // Jan, Feb, Mar
			rng.Intn(28)+1,
			rng.Intn(12)+8, // 8-19 hours
			rng.Intn(60), 0, 0, time.Local)

		t := trial.Trial{
			TrialID:       id,
			VideoURL:      sampleVideoURL,
			TranscriptURL: fmt.Sprintf("/api/trials/%s/transcript", id),
			StudentID:     fmt.Sprintf("student-%03d", i),
			StudentName:   studentNames[rng.Intn(len(studentNames))],
			TutorID:       fmt.Sprintf("tutor-%d", 100+i),
			TutorName:     tutorNames[rng.Intn(len(tutorNames))],
			Grade:         grades[rng.Intn(len(grades))],
			TrialDate:     date,
			Region:        regions[rng.Intn(len(regions))],
			Channel:       channels[rng.Intn(len(channels))],
			Duration:      rng.Intn(3600) + 900, // 15-75 minutes
			TrialVersion:  versions[rng.Intn(len(versions))],
		}
		ts.AddTrial(t)

		// 0-7 structured issues per trial for the issues dashboard.
		n := rng.Intn(8)
		issues := make([]analysis.IssueAnnotation, 0, n)
		for j := 0; j < n; j++ {
			it := issueTypes[rng.Intn(len(issueTypes))]
			start := float64(rng.Intn(t.Duration))
			issues = append(issues, analysis.IssueAnnotation{
				IssueID:     fmt.Sprintf("%s-issue-%d", id, j+1),
				TrialID:     id,
				Domain:      analysis.DomainOf(it),
				IssueType:   it,
				Severity:    severities[rng.Intn(len(severities))],
				StartTime:   start,
				Description: fmt.Sprintf("%s observed during the session", it),
				CreatedAt:   date.Add(time.Duration(rng.Intn(72)) * time.Hour),
			})
		}
		ts.AddIssues(id, issues)
	}

	for _, tr := range transcripts() {
		ts.AddTranscript(tr)
	}
	anns.Seed(seedAnnotations())
}

func reviewers() []trial.Reviewer {
	return []trial.Reviewer{
		{ReviewerID: "rev-001", Name: "Sarah Johnson", Email: "sarah.johnson@example.com", Role: "Senior Reviewer"},
		{ReviewerID: "rev-002", Name: "Michael Chen", Email: "michael.chen@example.com", Role: "Reviewer"},
		{ReviewerID: "rev-003", Name: "Emma Williams", Email: "emma.williams@example.com", Role: "Lead Reviewer"},
	}
}

func transcripts() []trial.Transcript {
	return []trial.Transcript{
		{
			TranscriptID: "trans-001",
			TrialID:      "trial-001",
			Segments: []trial.Segment{
				{StartTime: 0, EndTime: 5, Speaker: trial.SpeakerTutor, Text: "Hi there! Welcome to your trial class. My name is Alex and I'll be your tutor today."},
				{StartTime: 5, EndTime: 8, Speaker: trial.SpeakerStudent, Text: "Hi Alex! I'm excited to be here."},
				{StartTime: 8, EndTime: 15, Speaker: trial.SpeakerTutor, Text: "That's wonderful! Today we're going to work on some exciting math problems. Let's start with fractions."},
				{StartTime: 15, EndTime: 18, Speaker: trial.SpeakerStudent, Text: "Okay, I need help with fractions."},
				{StartTime: 18, EndTime: 25, Speaker: trial.SpeakerTutor, Text: "Perfect! Let's begin with adding fractions with the same denominator. Can you tell me what 1/4 + 2/4 equals?"},
				{StartTime: 25, EndTime: 30, Speaker: trial.SpeakerStudent, Text: "Um... is it 3/4?"},
				{StartTime: 30, EndTime: 35, Speaker: trial.SpeakerTutor, Text: "Excellent! That's absolutely correct. You just add the numerators and keep the denominator the same."},
			},
		},
		{
			TranscriptID: "trans-002",
			TrialID:      "trial-002",
			Segments: []trial.Segment{
				{StartTime: 0, EndTime: 6, Speaker: trial.SpeakerTutor, Text: "Good afternoon! I'm Maria, and I'll be guiding you through algebra today."},
				{StartTime: 6, EndTime: 10, Speaker: trial.SpeakerStudent, Text: "Hi Maria! I'm a bit nervous about algebra."},
				{StartTime: 10, EndTime: 15, Speaker: trial.SpeakerParent, Text: "Don't worry sweetie, Maria will help you understand it step by step."},
				{StartTime: 15, EndTime: 22, Speaker: trial.SpeakerTutor, Text: "That's right! Algebra is just like solving puzzles. Let's start with simple equations like x + 3 = 7."},
				{StartTime: 22, EndTime: 27, Speaker: trial.SpeakerStudent, Text: "So I need to find what x is?"},
				{StartTime: 27, EndTime: 33, Speaker: trial.SpeakerTutor, Text: "Exactly! We want to isolate x. What would you subtract from both sides?"},
				{StartTime: 33, EndTime: 36, Speaker: trial.SpeakerStudent, Text: "I think... subtract 3?"},
				{StartTime: 36, EndTime: 40, Speaker: trial.SpeakerTutor, Text: "Perfect! So x = 4. You're getting the hang of this!"},
			},
		},
	}
}

func seedAnnotations() []trial.Annotation {
	end15 := 15.0
	end35 := 35.0
	end22 := 22.0
	return []trial.Annotation{
		{
			AnnotationID: "ann-001",
			TrialID:      "trial-001",
			ReviewerID:   "rev-001",
			TrialPart:    trial.PartOne,
			Emotion:      trial.EmotionPositive,
			Timestamp:    trial.Timestamp{Start: 0, End: &end15},
			Content:      "Great introduction by the tutor. Warm and welcoming tone that puts the student at ease.",
			CreatedAt:    time.Date(2024, 1, 20, 10, 30, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 20, 10, 30, 0, 0, time.UTC),
		},
		{
			AnnotationID: "ann-002",
			TrialID:      "trial-001",
			ReviewerID:   "rev-001",
			TrialPart:    trial.PartTwo,
			Emotion:      trial.EmotionPositive,
			Timestamp:    trial.Timestamp{Start: 25, End: &end35},
			Content:      "Excellent positive reinforcement. The tutor validates the student's correct answer and explains the reasoning.",
			CreatedAt:    time.Date(2024, 1, 20, 10, 35, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 20, 10, 35, 0, 0, time.UTC),
		},
		{
			AnnotationID: "ann-003",
			TrialID:      "trial-002",
			ReviewerID:   "rev-002",
			TrialPart:    trial.PartOne,
			Emotion:      trial.EmotionPositive,
			Timestamp:    trial.Timestamp{Start: 6, End: &end22},
			Content:      "Good parent involvement and tutor's reassuring approach to address student anxiety about algebra.",
			CreatedAt:    time.Date(2024, 1, 21, 14, 25, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 21, 14, 25, 0, 0, time.UTC),
		},
	}
}
