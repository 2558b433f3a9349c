package lifecycle

import (
	"errors"
	"testing"

	"github.com/Amaspm/driver-management/internal/domain"
)

func TestEvaluateTransitionTable(t *testing.T) {
	all := []domain.Status{
		domain.StatusPending, domain.StatusTraining, domain.StatusActive,
		domain.StatusSuspended, domain.StatusRejected,
	}

	for _, current := range all {
		for _, target := range all {
			// Pending is a decision point (approve or reject only); active
			// never goes back to training; every other pair is open.
			wantAllowed := true
			switch {
			case current == domain.StatusPending:
				wantAllowed = target == domain.StatusActive || target == domain.StatusRejected
			case current == domain.StatusActive && target == domain.StatusTraining:
				wantAllowed = false
			}

			in := Input{DriverID: 7, Target: target}
			if target == domain.StatusRejected {
				in.Category = domain.RejectOther
				in.Reason = "tidak memenuhi syarat"
			}
			_, err := Evaluate(current, in)

			if wantAllowed && err != nil {
				t.Errorf("Evaluate(%s -> %s) unexpected error: %v", current, target, err)
			}
			if !wantAllowed {
				var ite *InvalidTransitionError
				if !errors.As(err, &ite) {
					t.Errorf("Evaluate(%s -> %s) error = %v, want InvalidTransitionError", current, target, err)
				} else if ite.From != current || ite.To != target {
					t.Errorf("InvalidTransitionError = %s -> %s, want %s -> %s", ite.From, ite.To, current, target)
				}
			}
		}
	}
}

func TestEvaluatePendingOnlyApproveOrReject(t *testing.T) {
	for _, target := range []domain.Status{
		domain.StatusPending, domain.StatusTraining, domain.StatusSuspended,
	} {
		_, err := Evaluate(domain.StatusPending, Input{DriverID: 1, Target: target})
		var ite *InvalidTransitionError
		if !errors.As(err, &ite) {
			t.Errorf("Evaluate(pending -> %s) error = %v, want InvalidTransitionError", target, err)
		}
	}
}

func TestEvaluateUnknownTarget(t *testing.T) {
	_, err := Evaluate(domain.StatusPending, Input{DriverID: 1, Target: domain.Status("deleted")})
	var ite *InvalidTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("error = %v, want InvalidTransitionError", err)
	}
}

func TestEvaluateApprove(t *testing.T) {
	tr, err := Evaluate(domain.StatusPending, Input{DriverID: 12, Target: domain.StatusActive})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if tr.DriverID != 12 || tr.Status != domain.StatusActive {
		t.Errorf("transition = %+v, want driver 12 -> active", tr)
	}
	if tr.Reason != nil {
		t.Errorf("reason = %q, want nil for non-rejected target", *tr.Reason)
	}
}

func TestEvaluateRejectWithDocuments(t *testing.T) {
	tr, err := Evaluate(domain.StatusPending, Input{
		DriverID:  3,
		Target:    domain.StatusRejected,
		Category:  domain.RejectUnclearDocuments,
		Documents: []domain.DocumentKind{domain.DocKTP, domain.DocSIM},
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if tr.Reason == nil {
		t.Fatal("reason = nil, want document reason")
	}
	if got, want := *tr.Reason, "Dokumen tidak jelas/tidak sesuai: KTP, SIM"; got != want {
		t.Errorf("reason = %q, want %q", got, want)
	}
}

func TestEvaluateRejectWithoutDocuments(t *testing.T) {
	_, err := Evaluate(domain.StatusPending, Input{
		DriverID: 3,
		Target:   domain.StatusRejected,
		Category: domain.RejectUnclearDocuments,
	})
	if !errors.Is(err, ErrMissingReason) {
		t.Fatalf("error = %v, want ErrMissingReason", err)
	}
}

func TestEvaluateRejectFreeTextMayBeEmpty(t *testing.T) {
	tr, err := Evaluate(domain.StatusActive, Input{
		DriverID: 9,
		Target:   domain.StatusRejected,
		Category: domain.RejectInvalidData,
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if tr.Reason == nil || *tr.Reason != "" {
		t.Errorf("reason = %v, want empty string", tr.Reason)
	}
}
