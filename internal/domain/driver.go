// Package domain holds the record-store entities as the gateway sees them.
// Field names mirror the record store's JSON; the store owns all durable state.
package domain

// Driver is the full driver record as returned by the record store.
// Photo fields carry base64 payloads and can be large; handlers must not log them.
type Driver struct {
	IDDriver int64  `json:"id_driver"`
	Nama     string `json:"nama"`
	Email    string `json:"email"`
	NoHP     string `json:"no_hp"`
	Alamat   string `json:"alamat"`
	TTL      string `json:"ttl"`
	Kota     string `json:"kota,omitempty"`

	NIK                         string `json:"nik"`
	NoSIM                       string `json:"no_sim"`
	JenisSIM                    string `json:"jenis_sim"`
	TanggalKedaluarsaSIM        string `json:"tanggal_kedaluarsa_sim,omitempty"`
	NoBPJS                      string `json:"no_bpjs"`
	TanggalKedaluarsaBPJS       string `json:"tanggal_kedaluarsa_bpjs,omitempty"`
	NoSertifikat                string `json:"no_sertifikat,omitempty"`
	TanggalKedaluarsaSertifikat string `json:"tanggal_kedaluarsa_sertifikat,omitempty"`

	NamaKontakDarurat     string `json:"nama_kontak_darurat"`
	NomorKontakDarurat    string `json:"nomor_kontak_darurat"`
	HubunganKontakDarurat string `json:"hubungan_kontak_darurat"`

	FotoKTP        string `json:"foto_ktp,omitempty"`
	FotoSIM        string `json:"foto_sim,omitempty"`
	FotoProfil     string `json:"foto_profil,omitempty"`
	FotoSertifikat string `json:"foto_sertifikat,omitempty"`
	FotoBPJS       string `json:"foto_bpjs,omitempty"`

	NamaBank      string `json:"nama_bank,omitempty"`
	NomorRekening string `json:"nomor_rekening,omitempty"`

	Status Status `json:"status"`
	// AlasanPenolakan is meaningful only while Status is rejected.
	AlasanPenolakan *string `json:"alasan_penolakan,omitempty"`
	WktDaftar       string  `json:"wkt_daftar"`
}

// PresenceEntry is the ephemeral online signal for one driver, owned by the
// presence service. It is never written back to the record store.
type PresenceEntry struct {
	DriverID string `json:"driver_id"`
	Kota     string `json:"kota"`
	Status   string `json:"status,omitempty"`
}

// DriverPresence is a driver joined with the latest presence snapshot,
// computed at read time for display only.
type DriverPresence struct {
	Driver
	Online     bool   `json:"online"`
	OnlineKota string `json:"online_kota,omitempty"`
}
