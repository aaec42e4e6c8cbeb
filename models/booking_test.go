package models

import "testing"

func TestCanTransitionBooking(t *testing.T) {
	all := []string{
		BookingStatusBooked,
		BookingStatusConfirmed,
		BookingStatusInProgress,
		BookingStatusCompleted,
		BookingStatusCancelled,
	}

	allowed := map[string][]string{
		BookingStatusBooked:     {BookingStatusConfirmed, BookingStatusCancelled},
		BookingStatusConfirmed:  {BookingStatusInProgress, BookingStatusCancelled},
		BookingStatusInProgress: {BookingStatusCompleted},
		BookingStatusCompleted:  {},
		BookingStatusCancelled:  {},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}
			if got := CanTransitionBooking(from, to); got != want {
				t.Errorf("CanTransitionBooking(%q, %q) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestBookingStatusesBefore(t *testing.T) {
	tests := []struct {
		target string
		want   []string
	}{
		{BookingStatusConfirmed, []string{BookingStatusBooked}},
		{BookingStatusCancelled, []string{BookingStatusBooked, BookingStatusConfirmed}},
		{BookingStatusInProgress, []string{BookingStatusConfirmed}},
		{BookingStatusCompleted, []string{BookingStatusInProgress}},
		{BookingStatusBooked, nil},
	}

	for _, tt := range tests {
		got := BookingStatusesBefore(tt.target)
		if len(got) != len(tt.want) {
			t.Errorf("BookingStatusesBefore(%q) = %v, want %v", tt.target, got, tt.want)
			continue
		}
		for _, w := range tt.want {
			found := false
			for _, g := range got {
				if g == w {
					found = true
				}
			}
			if !found {
				t.Errorf("BookingStatusesBefore(%q) = %v, missing %q", tt.target, got, w)
			}
		}
	}
}

func TestBookingEditableDeletable(t *testing.T) {
	tests := []struct {
		status    string
		editable  bool
		deletable bool
	}{
		{BookingStatusBooked, true, true},
		{BookingStatusConfirmed, true, true},
		{BookingStatusCancelled, false, true},
		{BookingStatusInProgress, false, false},
		{BookingStatusCompleted, false, false},
	}

	for _, tt := range tests {
		if got := BookingEditable(tt.status); got != tt.editable {
			t.Errorf("BookingEditable(%q) = %v, want %v", tt.status, got, tt.editable)
		}
		if got := BookingDeletable(tt.status); got != tt.deletable {
			t.Errorf("BookingDeletable(%q) = %v, want %v", tt.status, got, tt.deletable)
		}
	}
}

func TestValidBookingStatus(t *testing.T) {
	for _, status := range []string{
		BookingStatusBooked, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled,
	} {
		if !ValidBookingStatus(status) {
			t.Errorf("ValidBookingStatus(%q) = false, want true", status)
		}
	}
	for _, status := range []string{"", "pending", "Booked", "done"} {
		if ValidBookingStatus(status) {
			t.Errorf("ValidBookingStatus(%q) = true, want false", status)
		}
	}
}
