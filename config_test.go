package sandhika

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsZeroMaxCandidates(t *testing.T) {
	c := DefaultConfig()
	c.MaxCandidates = 0
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for MaxCandidates=0, got nil")
	}
}

func TestValidateRejectsWeightsNotSummingToOne(t *testing.T) {
	c := DefaultConfig()
	c.Weights = ScoreWeights{Rule: 0.5, Freq: 0.5, Grammar: 0.5}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for weights summing to 1.5, got nil")
	}
}

func TestValidateRejectsNegativeWeight(t *testing.T) {
	c := DefaultConfig()
	c.Weights = ScoreWeights{Rule: 1.2, Freq: -0.2, Grammar: 0.0}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for a negative weight, got nil")
	}
}

func TestValidateRejectsNegativeFrequencyReference(t *testing.T) {
	c := DefaultConfig()
	c.FrequencyReference = -1
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for negative FrequencyReference, got nil")
	}
}
