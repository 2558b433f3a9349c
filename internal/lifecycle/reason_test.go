package lifecycle

import (
	"errors"
	"strings"
	"testing"

	"github.com/Amaspm/driver-management/internal/domain"
)

func TestBuildRejectionReason(t *testing.T) {
	tests := []struct {
		name    string
		cat     domain.RejectionCategory
		docs    []domain.DocumentKind
		text    string
		want    string
		wantErr error
	}{
		{
			name: "single document",
			cat:  domain.RejectUnclearDocuments,
			docs: []domain.DocumentKind{domain.DocBPJS},
			want: "Dokumen tidak jelas/tidak sesuai: BPJS",
		},
		{
			name: "canonical order regardless of selection order",
			cat:  domain.RejectUnclearDocuments,
			docs: []domain.DocumentKind{domain.DocProfil, domain.DocKTP, domain.DocSertifikat},
			want: "Dokumen tidak jelas/tidak sesuai: KTP, Sertifikat, Foto Profil",
		},
		{
			name: "duplicates collapse",
			cat:  domain.RejectUnclearDocuments,
			docs: []domain.DocumentKind{domain.DocSIM, domain.DocSIM, domain.DocSIM},
			want: "Dokumen tidak jelas/tidak sesuai: SIM",
		},
		{
			name: "all documents",
			cat:  domain.RejectUnclearDocuments,
			docs: domain.DocumentOrder,
			want: "Dokumen tidak jelas/tidak sesuai: KTP, SIM, BPJS, Sertifikat, Foto Profil",
		},
		{
			name:    "no documents",
			cat:     domain.RejectUnclearDocuments,
			wantErr: ErrMissingReason,
		},
		{
			name:    "unknown document",
			cat:     domain.RejectUnclearDocuments,
			docs:    []domain.DocumentKind{domain.DocumentKind("paspor")},
			wantErr: ErrUnknownDocument,
		},
		{
			name: "free text category",
			cat:  domain.RejectInvalidData,
			text: "NIK tidak cocok dengan KTP",
			want: "NIK tidak cocok dengan KTP",
		},
		{
			name: "other category with empty text",
			cat:  domain.RejectOther,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildRejectionReason(tt.cat, tt.docs, tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildRejectionReason: %v", err)
			}
			if got != tt.want {
				t.Errorf("reason = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildRejectionReasonLabelsAppearOnce(t *testing.T) {
	got, err := BuildRejectionReason(domain.RejectUnclearDocuments,
		[]domain.DocumentKind{domain.DocKTP, domain.DocSIM, domain.DocKTP}, "")
	if err != nil {
		t.Fatalf("BuildRejectionReason: %v", err)
	}
	if !strings.HasPrefix(got, UnclearDocumentsPrefix) {
		t.Errorf("reason %q does not start with prefix", got)
	}
	body := strings.TrimPrefix(got, UnclearDocumentsPrefix)
	if strings.Count(body, "KTP") != 1 || strings.Count(body, "SIM") != 1 {
		t.Errorf("labels repeated in %q", body)
	}
}
