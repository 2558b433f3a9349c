package domain

// Armada is a fleet vehicle record.
type Armada struct {
	IDArmada        int64  `json:"id_armada,omitempty"`
	NomorPolisi     string `json:"nomor_polisi"`
	JenisArmada     string `json:"jenis_armada"`
	KapasitasMuatan int    `json:"kapasitas_muatan"`
	Status          bool   `json:"status"`
	WarnaArmada     string `json:"warna_armada"`
	IDSTNK          string `json:"id_stnk"`
	TahunPembuatan  string `json:"tahun_pembuatan"`
	IDBPKB          string `json:"id_bpkb"`
	FotoSTNK        string `json:"foto_stnk,omitempty"`
	FotoBPKB        string `json:"foto_bpkb,omitempty"`
}
