package screenschema

import "testing"

func TestCandidateProfileValidateRequiresProvider(t *testing.T) {
	c := CandidateProfile{CandidateID: "c1"}
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for missing provider")
	}
	if verr, ok := err.(*ValidationError); !ok || verr.Field != "provider" {
		t.Fatalf("Validate() error = %v, want provider field error", err)
	}
}

func TestCandidateProfileValidateRequiresCandidateID(t *testing.T) {
	c := CandidateProfile{Provider: "bizreach"}
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for missing candidate_id")
	}
}

func TestCandidateProfileValidateOK(t *testing.T) {
	c := CandidateProfile{Provider: "bizreach", CandidateID: "c1"}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestCandidateProfileValidateToleratesReversedSalary(t *testing.T) {
	min, max := 9000000, 5000000
	c := CandidateProfile{
		Provider:            "bizreach",
		CandidateID:         "c1",
		DesiredSalaryMinJPY:  &min,
		DesiredSalaryMaxJPY:  &max,
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil (reversed salary is not a load-time error)", err)
	}
}

func TestJobDescriptionValidateRequiresJobID(t *testing.T) {
	j := JobDescription{}
	if err := j.Validate(); err == nil {
		t.Fatal("expected error for missing job_id")
	}
}

func TestExperienceEntryIsOngoing(t *testing.T) {
	present := "現在"
	e := ExperienceEntry{End: &present}
	if !e.IsOngoing() {
		t.Fatal("expected IsOngoing() true for 現在 sentinel")
	}

	e2 := ExperienceEntry{}
	if !e2.IsOngoing() {
		t.Fatal("expected IsOngoing() true for absent End")
	}

	ended := "2022-01"
	e3 := ExperienceEntry{End: &ended}
	if e3.IsOngoing() {
		t.Fatal("expected IsOngoing() false for a concrete end date")
	}
}
