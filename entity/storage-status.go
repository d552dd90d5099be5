package entity

// StorageStatus is the diagnostics payload reporting best-effort storage
// connectivity. Collections is capped to the first few names.
type StorageStatus struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
