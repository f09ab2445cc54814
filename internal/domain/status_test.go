package domain

import "testing"

func TestStatusLifecycleIsLinear(t *testing.T) {
	order := []TripStatus{StatusRequested, StatusAccepted, StatusInTransit, StatusCompleted, StatusPaid}
	for i := 0; i < len(order)-1; i++ {
		if !CanTransition(order[i], order[i+1]) {
			t.Fatalf("%s -> %s should be legal", order[i], order[i+1])
		}
	}
	if _, ok := StatusPaid.Next(); ok {
		t.Fatal("paid is terminal")
	}
	if CanTransition(StatusRequested, StatusInTransit) {
		t.Fatal("skipping a step should be illegal")
	}
	if CanTransition(StatusAccepted, StatusRequested) {
		t.Fatal("regression should be illegal")
	}
}
