package model

import "testing"

func TestSessionStatus_IsSettled(t *testing.T) {
	tests := []struct {
		status   SessionStatus
		expected bool
	}{
		{SessionStatusIdle, false},
		{SessionStatusProbing, false},
		{SessionStatusReady, true},
		{SessionStatusEmpty, true},
		{SessionStatusInputError, true},
	}

	for _, test := range tests {
		result := test.status.IsSettled()
		if result != test.expected {
			t.Errorf("SessionStatus(%s).IsSettled() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestSessionStatus_HasResults(t *testing.T) {
	tests := []struct {
		status   SessionStatus
		expected bool
	}{
		{SessionStatusIdle, false},
		{SessionStatusProbing, false},
		{SessionStatusReady, true},
		{SessionStatusEmpty, false},
		{SessionStatusInputError, false},
	}

	for _, test := range tests {
		result := test.status.HasResults()
		if result != test.expected {
			t.Errorf("SessionStatus(%s).HasResults() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestSessionStatus_String(t *testing.T) {
	status := SessionStatusProbing
	expected := "Probing"
	result := status.String()

	if result != expected {
		t.Errorf("SessionStatus.String() = %s, expected %s", result, expected)
	}
}
