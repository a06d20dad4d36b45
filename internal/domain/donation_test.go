package domain

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		cur, next string
		want      bool
	}{
		{DonationPending, DonationCompleted, true},
		{DonationPending, DonationFailed, true},
		{DonationPending, DonationPending, true},
		{DonationCompleted, DonationCompleted, true},
		{DonationFailed, DonationFailed, true},
		{DonationCompleted, DonationPending, false},
		{DonationCompleted, DonationFailed, false},
		{DonationFailed, DonationCompleted, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.cur, c.next); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.cur, c.next, got, c.want)
		}
	}
}

func TestEnumValidators(t *testing.T) {
	if !ValidDonationStatus("pending") || ValidDonationStatus("refunded") {
		t.Fatal("donation status validation wrong")
	}
	if !ValidPaymentMethod("upi") || ValidPaymentMethod("cash") {
		t.Fatal("payment method validation wrong")
	}
	if !ValidOrgCategory("Healthcare") || ValidOrgCategory("Cryptocurrency") {
		t.Fatal("organization category validation wrong")
	}
	if !ValidFeedbackCategory("complaint") || ValidFeedbackCategory("praise") {
		t.Fatal("feedback category validation wrong")
	}
	if !ValidNotifType("donation") || ValidNotifType("marketing") {
		t.Fatal("notification type validation wrong")
	}
}

func TestValidEmail(t *testing.T) {
	for _, good := range []string{"a@x.com", "john.doe@example.org", "a.b-c@mail.co.uk"} {
		if !ValidEmail(good) {
			t.Errorf("ValidEmail(%q) = false", good)
		}
	}
	for _, bad := range []string{"", "plain", "a@b", "@x.com", "a b@x.com"} {
		if ValidEmail(bad) {
			t.Errorf("ValidEmail(%q) = true", bad)
		}
	}
}
