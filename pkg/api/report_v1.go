// pkg/api/report_v1.go
package api

// PrimerV1 is the stable JSON schema for one primer's derived properties.
type PrimerV1 struct {
	Seq          string   `json:"seq"`
	Length       int      `json:"length"`
	GCContent    float64  `json:"gc_content"`
	Tm           int      `json:"tm"`
	LongEnough   bool     `json:"long_enough"`
	TerminalBase string   `json:"terminal_base"`
	Complement   string   `json:"complement"`
	Hairpins     [][2]int `json:"hairpins,omitempty"` // [left, right] arm offsets
}

// ReportV1 is the stable JSON/JSONL schema for one evaluated primer pair.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	PairID        string   `json:"pair_id"`
	Forward       PrimerV1 `json:"forward"`
	Reverse       PrimerV1 `json:"reverse"`
	DimerMode     string   `json:"dimer_mode"`
	NoPrimerDimer bool     `json:"no_primer_dimer"`
	GCContentOK   bool     `json:"gc_content_ok"`
	AnnealingOK   bool     `json:"annealing_temp_ok"`
	TerminalGCOK  bool     `json:"terminal_gc_ok"`
	Pass          bool     `json:"pass"`
}
