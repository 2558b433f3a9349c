package domain

// Status is the lifecycle stage of a driver application. Stored and
// transitioned by the record store; the gateway only validates transitions.
type Status string

const (
	StatusPending   Status = "pending"
	StatusTraining  Status = "training"
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusRejected  Status = "rejected"

	// StatusInactive still exists in old record-store rows. Accepted on
	// read, never offered as a transition target.
	StatusInactive Status = "inactive"
)

// Valid reports whether s is a status the gateway may submit as a target.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusTraining, StatusActive, StatusSuspended, StatusRejected:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

// DocumentKind identifies one of the identity documents a driver uploads.
type DocumentKind string

const (
	DocKTP        DocumentKind = "ktp"
	DocSIM        DocumentKind = "sim"
	DocBPJS       DocumentKind = "bpjs"
	DocSertifikat DocumentKind = "sertifikat"
	DocProfil     DocumentKind = "profil"
)

// DocumentOrder is the canonical presentation order for document labels in
// rejection reasons, regardless of selection order.
var DocumentOrder = []DocumentKind{DocKTP, DocSIM, DocBPJS, DocSertifikat, DocProfil}

var documentLabels = map[DocumentKind]string{
	DocKTP:        "KTP",
	DocSIM:        "SIM",
	DocBPJS:       "BPJS",
	DocSertifikat: "Sertifikat",
	DocProfil:     "Foto Profil",
}

// Label returns the human-readable label used in rejection reasons.
func (d DocumentKind) Label() (string, bool) {
	l, ok := documentLabels[d]
	return l, ok
}

// RejectionCategory is the admin-chosen classification of a rejection.
type RejectionCategory string

const (
	RejectUnclearDocuments       RejectionCategory = "dokumen_tidak_jelas"
	RejectInvalidData            RejectionCategory = "data_tidak_valid"
	RejectIncompleteRequirements RejectionCategory = "persyaratan_tidak_lengkap"
	RejectOther                  RejectionCategory = "lainnya"
)

func (c RejectionCategory) Valid() bool {
	switch c {
	case RejectUnclearDocuments, RejectInvalidData, RejectIncompleteRequirements, RejectOther:
		return true
	}
	return false
}
