package lifecycle

import (
	"errors"
	"strings"

	"github.com/Amaspm/driver-management/internal/domain"
)

// UnclearDocumentsPrefix opens every document-based rejection reason. The
// record store persists only the final string.
const UnclearDocumentsPrefix = "Dokumen tidak jelas/tidak sesuai: "

// ErrMissingReason means a document-based rejection was requested with no
// documents selected.
var ErrMissingReason = errors.New("rejection requires at least one selected document")

// ErrUnknownDocument means a selected document kind is not part of the taxonomy.
var ErrUnknownDocument = errors.New("unknown document kind")

// BuildRejectionReason derives the stored rejection reason from the chosen
// category. For unclear documents the reason is the fixed prefix plus the
// selected document labels joined in canonical order, each at most once
// (selection order is deliberately not preserved). Every other category
// passes the free text through, which may be empty.
func BuildRejectionReason(cat domain.RejectionCategory, docs []domain.DocumentKind, freeText string) (string, error) {
	if cat != domain.RejectUnclearDocuments {
		return freeText, nil
	}
	if len(docs) == 0 {
		return "", ErrMissingReason
	}

	selected := make(map[domain.DocumentKind]bool, len(docs))
	for _, d := range docs {
		if _, ok := d.Label(); !ok {
			return "", ErrUnknownDocument
		}
		selected[d] = true
	}

	labels := make([]string, 0, len(selected))
	for _, d := range domain.DocumentOrder {
		if selected[d] {
			l, _ := d.Label()
			labels = append(labels, l)
		}
	}
	return UnclearDocumentsPrefix + strings.Join(labels, ", "), nil
}
