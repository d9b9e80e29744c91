package models

import "testing"

func TestValidOrderStatus(t *testing.T) {
	for _, s := range OrderStatuses {
		if !ValidOrderStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "unknown", "Pending", "done"} {
		if ValidOrderStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestTerminalOrderStatus(t *testing.T) {
	cases := map[string]bool{
		OrderPending:    false,
		OrderConfirmed:  false,
		OrderProcessing: false,
		OrderShipped:    false,
		OrderDelivered:  true,
		OrderCancelled:  true,
	}
	for status, terminal := range cases {
		if TerminalOrderStatus(status) != terminal {
			t.Errorf("TerminalOrderStatus(%q) = %v, want %v", status, !terminal, terminal)
		}
	}
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range PaymentMethods {
		if !ValidPaymentMethod(m) {
			t.Errorf("expected %q to be valid", m)
		}
	}
	if ValidPaymentMethod("bitcoin") {
		t.Error("expected bitcoin to be invalid")
	}
}
